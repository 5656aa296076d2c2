package fees

import "fmt"

// ErrorKind identifies why a fee calculation was rejected
type ErrorKind string

const (
	KindInvalidSpendInfo    ErrorKind = "InvalidSpendInfo"
	KindInvalidNativeAmount ErrorKind = "InvalidNativeAmount"
	KindInvalidGasPrice     ErrorKind = "InvalidGasPrice"
	KindInvalidFeeOption    ErrorKind = "InvalidFeeOption"
	KindInvalidGasLimit     ErrorKind = "InvalidGasLimit"
	KindInvalidFeeSchedule  ErrorKind = "InvalidFeeSchedule"
)

// Error is returned by CalcMiningFee and its building blocks. Field names the
// offending input so callers can surface it to a user.
type Error struct {
	Kind  ErrorKind
	Field string
	Value string
}

// Sentinel values for errors.Is. Matching compares Kind only.
var (
	ErrInvalidSpendInfo    = &Error{Kind: KindInvalidSpendInfo}
	ErrInvalidNativeAmount = &Error{Kind: KindInvalidNativeAmount}
	ErrInvalidGasPrice     = &Error{Kind: KindInvalidGasPrice}
	ErrInvalidFeeOption    = &Error{Kind: KindInvalidFeeOption}
	ErrInvalidGasLimit     = &Error{Kind: KindInvalidGasLimit}
	ErrInvalidFeeSchedule  = &Error{Kind: KindInvalidFeeSchedule}
)

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Value != "":
		return fmt.Sprintf("%s: %s=%q", e.Kind, e.Field, e.Value)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	default:
		return string(e.Kind)
	}
}

// Is reports whether target is a *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, field, value string) *Error {
	return &Error{Kind: kind, Field: field, Value: value}
}
