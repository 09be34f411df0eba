package config

import "errors"

var (
	ErrInvalidValue      = errors.New("invalid config value")
	ErrJWTSecretRequired = errors.New("jwt secret is required")
)
