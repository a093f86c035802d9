package errors

// ClickHouse-specific helpers for mapping driver errors to project ErrorCode and retry semantics

import (
	"context"
	stderrs "errors"

	"github.com/ClickHouse/clickhouse-go/v2/lib/proto"
)

// Server exception codes we care about
// see ClickHouse ErrorCodes.cpp; values are stable across releases
const (
	chErrTimeoutExceeded    = 159
	chErrTooManyRowsOrBytes = 396
	chErrMemoryLimit        = 241
	chErrTooManyQueries     = 202
	chErrQueryWasCancelled  = 394
	chErrTableDoesNotExist  = 60
	chErrUnknownIdentifier  = 47
	chErrSyntaxError        = 62
)

// ExtractChError returns (*proto.Exception, true) if the root cause is a server exception
func ExtractChError(err error) (*proto.Exception, bool) {
	var ex *proto.Exception
	if stderrs.As(Root(err), &ex) {
		return ex, true
	}
	return nil, false
}

// IsChCode reports whether the error is a ClickHouse server exception with the given code
func IsChCode(err error, code int32) bool {
	ex, ok := ExtractChError(err)
	return ok && ex.Code == code
}

// IsQueryTimeout reports whether the warehouse killed the query for exceeding its time budget
func IsQueryTimeout(err error) bool { return IsChCode(err, chErrTimeoutExceeded) }

// IsScanBudgetExceeded reports whether the query tripped the rows/bytes read limit
func IsScanBudgetExceeded(err error) bool { return IsChCode(err, chErrTooManyRowsOrBytes) }

// IsQueryCancelled reports whether the query was cancelled server side
func IsQueryCancelled(err error) bool { return IsChCode(err, chErrQueryWasCancelled) }

// WarehouseErrorCode maps a ClickHouse error to an ErrorCode with an ok flag
// !ok means err wasn't a server exception; caller may fall back to generic handling
func WarehouseErrorCode(err error) (ErrorCode, bool) {
	ex, ok := ExtractChError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch ex.Code {
	case chErrTableDoesNotExist, chErrUnknownIdentifier, chErrSyntaxError:
		// a query we compiled references schema that does not exist;
		// that is a descriptor bug, not a transient warehouse problem
		return ErrorCodeCompilation, true
	case chErrTooManyQueries:
		return ErrorCodeTooManyRequests, true
	default:
		return ErrorCodeExecution, true
	}
}

// AsWarehouse wraps any failed warehouse call into a project error
// context cancellation is passed through untouched so callers can detect it
func AsWarehouse(err error, op string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return err
	}
	if code, ok := WarehouseErrorCode(err); ok {
		return WithOp(Wrapf(err, code, "warehouse query failed"), op)
	}
	return WithOp(Wrapf(err, ErrorCodeExecution, "warehouse query failed"), op)
}

// IsRetryable reports whether a failed call may succeed on retry
// retry policy itself belongs to the transport layer, not this core
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	ex, ok := ExtractChError(err)
	if !ok {
		return IsCode(err, ErrorCodeUnavailable)
	}
	switch ex.Code {
	case chErrTimeoutExceeded, chErrMemoryLimit, chErrTooManyQueries:
		return true
	}
	return false
}
