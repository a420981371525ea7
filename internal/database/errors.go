package database

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrorKind is the storage-independent category of a persistence failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindUniqueViolation
	KindForeignKeyViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUniqueViolation:
		return "unique_violation"
	case KindForeignKeyViolation:
		return "foreign_key_violation"
	}
	return "unknown"
}

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Error is a classified persistence failure. Columns lists the offending
// columns when the engine reports them.
type Error struct {
	Kind       ErrorKind
	Constraint string
	Columns    []string
	Err        error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

var (
	pgKeyDetail   = regexp.MustCompile(`^Key \(([^)]+)\)=`)
	sqliteColumns = regexp.MustCompile(`constraint failed: (.+)$`)
)

// Classify translates an engine-specific error into an *Error. It returns nil
// for a nil err; anything it cannot recognise comes back as KindUnknown.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Err: err}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Error{Kind: KindUniqueViolation, Err: err}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &Error{Kind: KindForeignKeyViolation, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLite(liteErr, err)
	}

	return &Error{Kind: KindUnknown, Err: err}
}

func classifyPostgres(pgErr *pgconn.PgError, err error) *Error {
	out := &Error{Kind: KindUnknown, Constraint: pgErr.ConstraintName, Err: err}
	switch pgErr.Code {
	case pgUniqueViolation:
		out.Kind = KindUniqueViolation
	case pgForeignKeyViolation:
		out.Kind = KindForeignKeyViolation
	default:
		return out
	}

	if m := pgKeyDetail.FindStringSubmatch(pgErr.Detail); m != nil {
		out.Columns = splitColumns(m[1])
	} else if pgErr.ColumnName != "" {
		out.Columns = []string{pgErr.ColumnName}
	}
	return out
}

func classifySQLite(liteErr sqlite3.Error, err error) *Error {
	out := &Error{Kind: KindUnknown, Err: err}
	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		out.Kind = KindUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		out.Kind = KindForeignKeyViolation
		return out
	default:
		return out
	}

	// "UNIQUE constraint failed: alocacoes.cliente_id, alocacoes.acao_id"
	if m := sqliteColumns.FindStringSubmatch(liteErr.Error()); m != nil {
		for _, qualified := range splitColumns(m[1]) {
			if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
				qualified = qualified[i+1:]
			}
			out.Columns = append(out.Columns, qualified)
		}
	}
	return out
}

func splitColumns(s string) []string {
	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(strings.TrimSpace(p), `"`); p != "" {
			cols = append(cols, p)
		}
	}
	return cols
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind ErrorKind) bool {
	c := Classify(err)
	return c != nil && c.Kind == kind
}
