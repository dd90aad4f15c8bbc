package authz

import (
	"context"

	"examsched/internal/domain/identity"
	"examsched/internal/infra"
	"examsched/internal/infra/db"
	"examsched/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
)

var dialect = goqu.Dialect("postgres")

// ProgramAuthorizer grants admins everything and checks other roles against
// program_editors membership.
type ProgramAuthorizer struct {
	db db.DBTX
}

func NewProgramAuthorizer(dbtx db.DBTX) *ProgramAuthorizer {
	return &ProgramAuthorizer{db: dbtx}
}

func (a *ProgramAuthorizer) CanEditProgram(ctx context.Context, principal identity.Principal, programID uuid.UUID) (bool, error) {
	if principal.IsAdmin() {
		return true, nil
	}

	sql, args, err := dialect.
		Select(goqu.COUNT("*")).
		From("program_editors").
		Where(
			goqu.C("user_id").Eq(principal.Subject),
			goqu.C("program_id").Eq(programID),
		).
		ToSQL()
	if err != nil {
		return false, errs.Wrap(err, "failed to build program editor query")
	}

	var count int
	if err := a.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, infra.WrapRepoErr("failed to check program editor membership", err)
	}
	return count > 0, nil
}
