package shared

import (
	"context"

	"examsched/internal/domain/identity"

	"github.com/google/uuid"
)

// Authorizer decides whether a principal may schedule exams for a program.
type Authorizer interface {
	CanEditProgram(ctx context.Context, principal identity.Principal, programID uuid.UUID) (bool, error)
}
