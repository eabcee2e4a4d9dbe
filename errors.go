package cronwhen

import "fmt"

var (
	ErrWithClockNil         = fmt.Errorf("cronwhen: WithClock: clock must not be nil")
	ErrWithIterationCapZero = fmt.Errorf("cronwhen: WithIterationCap: cap must be greater than 0")
	ErrWithLoggerNil        = fmt.Errorf("cronwhen: WithLogger: logger must not be nil")
	ErrWithRunCountZero     = fmt.Errorf("cronwhen: WithRunCount: count must be greater than 0")
)

// ParseErrorKind classifies everything that can go wrong while parsing
// a cron expression.
type ParseErrorKind int

const (
	ErrKindFieldCount ParseErrorKind = iota
	ErrKindEmptyField
	ErrKindOutOfRange
	ErrKindInvalidStep
	ErrKindInvalidRangeOrder
	ErrKindUnsupportedToken
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrKindFieldCount:
		return "field_count"
	case ErrKindEmptyField:
		return "empty_field"
	case ErrKindOutOfRange:
		return "out_of_range"
	case ErrKindInvalidStep:
		return "invalid_step"
	case ErrKindInvalidRangeOrder:
		return "invalid_range_order"
	case ErrKindUnsupportedToken:
		return "unsupported_token"
	default:
		return "unknown"
	}
}

// ParseError is the failure produced by Parse. Field carries the display
// label of the offending cron position ("Minute", "Day of week", ...) and
// is empty only for expression-level failures such as a wrong field count.
type ParseError struct {
	Kind   ParseErrorKind
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return "cronwhen: " + e.Detail
	}
	return fmt.Sprintf("cronwhen: %s: %s", e.Field, e.Detail)
}

func fieldCountError(found int) *ParseError {
	return &ParseError{
		Kind:   ErrKindFieldCount,
		Detail: fmt.Sprintf("expected 5 fields, found %d", found),
	}
}

func emptyFieldError(spec fieldSpec, detail string) *ParseError {
	return &ParseError{Kind: ErrKindEmptyField, Field: spec.label, Detail: detail}
}

func outOfRangeError(spec fieldSpec, value int) *ParseError {
	return &ParseError{
		Kind:   ErrKindOutOfRange,
		Field:  spec.label,
		Detail: fmt.Sprintf("value %d out of range %d-%d", value, spec.min, spec.inputMax),
	}
}

func invalidStepError(spec fieldSpec, step string) *ParseError {
	return &ParseError{
		Kind:   ErrKindInvalidStep,
		Field:  spec.label,
		Detail: fmt.Sprintf("step %q must be a positive integer", step),
	}
}

func invalidRangeOrderError(spec fieldSpec, start, end int) *ParseError {
	return &ParseError{
		Kind:   ErrKindInvalidRangeOrder,
		Field:  spec.label,
		Detail: fmt.Sprintf("range start %d exceeds end %d", start, end),
	}
}

func unsupportedTokenError(spec fieldSpec, token string) *ParseError {
	return &ParseError{
		Kind:   ErrKindUnsupportedToken,
		Field:  spec.label,
		Detail: fmt.Sprintf("unsupported token %q", token),
	}
}
