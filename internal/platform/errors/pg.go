package errors

import (
	stderrs "errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes and codes the mood store can produce
var sqlState = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey, // unique_violation
	"23502": ErrorCodeValidation,   // not_null_violation
	"23514": ErrorCodeValidation,   // check_violation, e.g. rating outside 1..5
	"23503": ErrorCodeInvalidArgument,
	"22001": ErrorCodeInvalidArgument, // string too long for notes
	"22P02": ErrorCodeInvalidArgument, // malformed uuid
	"22007": ErrorCodeInvalidArgument, // bad timestamp text
	"25006": ErrorCodeUnavailable,     // read only transaction, usually a replica
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
	"53300": ErrorCodeUnavailable,     // too_many_connections
	"57014": ErrorCodeUnavailable,     // statement timeout
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	ok := stderrs.As(err, &pe)
	return pe, ok
}

// IsCheckViolation reports a CHECK constraint failure anywhere in err's chain
func IsCheckViolation(err error) bool {
	pe, ok := pgError(err)
	return ok && pe.Code == "23514"
}

// dbCode classifies a driver error; connect failures never reached the server
func dbCode(err error) ErrorCode {
	if stderrs.Is(err, pgx.ErrNoRows) {
		return ErrorCodeNotFound
	}
	var ce *pgconn.ConnectError
	var ne net.Error
	if stderrs.As(err, &ce) || stderrs.As(err, &ne) {
		return ErrorCodeUnavailable
	}
	if pe, ok := pgError(err); ok {
		if c, known := sqlState[pe.Code]; known {
			return c
		}
	}
	return ErrorCodeDB
}

// FromPostgres wraps a driver error under msg with the code its SQLSTATE implies;
// no rows becomes NotFound and unrecognized failures are DB
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, dbCode(err), msg)
}
