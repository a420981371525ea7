package services

import (
	"strings"

	"carteira/internal/database"
	apperrors "carteira/internal/errors"
)

// constraintColumns resolves a constraint name to its columns when the
// engine reports the name but not the key. Foreign keys map to the
// referencing column, which is the one a client sent.
var constraintColumns = map[string][]string{
	"uq_clientes_cpf_cnpj":      {"cpf_cnpj"},
	"uq_clientes_email":         {"email"},
	"uq_acoes_nome":             {"nome"},
	"uq_acoes_ticker":           {"ticker"},
	"uq_alocacoes_cliente_acao": {"cliente_id", "acao_id"},
	"fk_alocacoes_cliente":      {"cliente_id"},
	"fk_alocacoes_acao":         {"acao_id"},
}

// dbErrorMap says which application error each persistence failure kind
// becomes for one operation. Nil entries fall back to the generic errors.
// foreignKeyFields names the columns to report when the engine does not say
// which constraint failed, as SQLite does.
type dbErrorMap struct {
	notFound         *apperrors.AppError
	duplicate        *apperrors.AppError
	foreignKey       *apperrors.AppError
	foreignKeyFields []string
}

func (m dbErrorMap) translate(err error) error {
	c := database.Classify(err)
	switch c.Kind {
	case database.KindNotFound:
		if m.notFound != nil {
			return m.notFound
		}
		return apperrors.ErrNotFound
	case database.KindUniqueViolation:
		if m.duplicate != nil {
			return withFields(m.duplicate, uniqueFields(c))
		}
		return duplicateValue(c)
	case database.KindForeignKeyViolation:
		target := apperrors.ErrInvalidReference
		if m.foreignKey != nil {
			target = m.foreignKey
		}
		fields := constraintColumns[c.Constraint]
		if len(fields) == 0 {
			fields = m.foreignKeyFields
		}
		return withFields(target, fields)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func uniqueFields(c *database.Error) []string {
	if len(c.Columns) > 0 {
		return c.Columns
	}
	return constraintColumns[c.Constraint]
}

func withFields(sentinel *apperrors.AppError, fields []string) *apperrors.AppError {
	if len(fields) == 0 {
		return sentinel
	}
	return apperrors.WithFields(sentinel, append([]string(nil), fields...)...)
}

func duplicateValue(c *database.Error) *apperrors.AppError {
	fields := uniqueFields(c)
	if len(fields) == 0 {
		return apperrors.ErrDuplicateValue
	}
	e := apperrors.WithFields(apperrors.ErrDuplicateValue, fields...)
	e.Message = "A record with this " + strings.Join(fields, " and ") + " already exists"
	return e
}
