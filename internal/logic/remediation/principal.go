package remediation

import "context"

// AnonymousPrincipal is recorded when no caller identity is attached to the context.
const AnonymousPrincipal = "anonymous"

type principalKey struct{}

// WithPrincipal attaches the caller identity recorded in the audit trail.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFrom returns the caller identity attached to ctx.
func PrincipalFrom(ctx context.Context) string {
	if principal, ok := ctx.Value(principalKey{}).(string); ok && principal != "" {
		return principal
	}

	return AnonymousPrincipal
}
