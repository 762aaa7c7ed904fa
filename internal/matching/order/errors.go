package order

import "fmt"

// ErrorCode classifies an engine error, adapted from the teacher's
// pkg/errors.TradSysError — a typed code instead of a bare string, so
// callers can switch on failure kind without parsing messages.
type ErrorCode string

const (
	CodeInvalidOrder       ErrorCode = "INVALID_ORDER"
	CodeNoWorkerForSymbol  ErrorCode = "NO_WORKER_FOR_SYMBOL"
	CodeWorkerAlreadyExists ErrorCode = "WORKER_ALREADY_EXISTS"
	CodeOrderBookNotFound  ErrorCode = "ORDER_BOOK_NOT_FOUND"
	CodeOrderNotFound      ErrorCode = "ORDER_NOT_FOUND"
)

// EngineError is the error type raised by order validation and the
// scheduling layer. It satisfies the error interface; callers tell failure
// kinds apart by extracting it with errors.As and comparing Code.
type EngineError struct {
	Code   ErrorCode
	Reason string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Reason)
}

// InvalidOrder builds the error raised when the validator chain rejects a
// candidate order.
func InvalidOrder(reason string) *EngineError {
	return &EngineError{Code: CodeInvalidOrder, Reason: reason}
}

// NoWorkerForSymbol builds the error raised when a symbol has no assigned
// book worker.
func NoWorkerForSymbol(symbol Symbol) *EngineError {
	return &EngineError{Code: CodeNoWorkerForSymbol, Reason: fmt.Sprintf("no worker assigned for symbol %q", symbol)}
}

// WorkerAlreadyExists builds the error raised when a worker name is
// registered twice.
func WorkerAlreadyExists(name string) *EngineError {
	return &EngineError{Code: CodeWorkerAlreadyExists, Reason: fmt.Sprintf("worker %q already exists", name)}
}

// OrderBookNotFound builds the error raised when a symbol's book is looked
// up but was never created.
func OrderBookNotFound(symbol Symbol) *EngineError {
	return &EngineError{Code: CodeOrderBookNotFound, Reason: fmt.Sprintf("no order book for symbol %q", symbol)}
}

// OrderNotFound builds the error raised when a cancel references an ID that
// is not resting in the book.
func OrderNotFound(id ID) *EngineError {
	return &EngineError{Code: CodeOrderNotFound, Reason: fmt.Sprintf("order %d not found", id)}
}
