package remediation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// State is a step of a remediation session.
type State string

const (
	StateRequested      State = "requested"
	StateResolvingOwner State = "resolving_owner"
	StateMutating       State = "mutating"
	StateSucceeded      State = "succeeded"
	StateFailed         State = "failed"
)

// session tracks one remediation request. Sessions are never retried.
type session struct {
	id     string
	action Action
	state  State
	logger *slog.Logger
}

func newSession(ctx context.Context, logger *slog.Logger, action Action, namespace, target string) *session {
	id := uuid.NewString()

	s := &session{
		id:     id,
		action: action,
		state:  StateRequested,
		logger: logger.With(
			"session", id,
			"action", string(action),
			"namespace", namespace,
			"target", target,
		),
	}

	s.logger.InfoContext(ctx, "remediation requested", "principal", PrincipalFrom(ctx))

	return s
}

func (s *session) transition(ctx context.Context, state State) {
	s.logger.DebugContext(ctx, "remediation state changed", "from", string(s.state), "to", string(state))
	s.state = state
}
