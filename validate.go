package cronwhen

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// Result is the outcome of validating one cron expression. Exactly one
// of the two arms is populated: on success Parsed, Summary and NextRuns
// are set and Err is nil; on failure only Err is set.
type Result struct {
	Parsed   *Expression
	Summary  string
	NextRuns []time.Time
	Err      error
}

// OK reports whether the expression validated.
func (r Result) OK() bool {
	return r.Err == nil
}

// Validator is the engine's single entry point: parse, describe and
// simulate in one call. A Validator holds no per-call state and is safe
// for concurrent use.
type Validator struct {
	clock        clockwork.Clock
	logger       Logger
	runCount     int
	iterationCap int
	telemetry    bool
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator) error

// WithRunCount sets how many upcoming run times Validate reports.
func WithRunCount(count int) ValidatorOption {
	return func(v *Validator) error {
		if count <= 0 {
			return ErrWithRunCountZero
		}
		v.runCount = count
		return nil
	}
}

// WithIterationCap overrides DefaultIterationCap for the simulation scan.
func WithIterationCap(iterationCap int) ValidatorOption {
	return func(v *Validator) error {
		if iterationCap <= 0 {
			return ErrWithIterationCapZero
		}
		v.iterationCap = iterationCap
		return nil
	}
}

// WithClock sets the clock "now" is sampled from. Tests pass a
// clockwork fake clock to pin the simulation start.
func WithClock(clock clockwork.Clock) ValidatorOption {
	return func(v *Validator) error {
		if clock == nil {
			return ErrWithClockNil
		}
		v.clock = clock
		return nil
	}
}

// WithLogger sets the logger used for per-validation debug lines.
func WithLogger(logger Logger) ValidatorOption {
	return func(v *Validator) error {
		if logger == nil {
			return ErrWithLoggerNil
		}
		v.logger = logger
		return nil
	}
}

// WithTelemetry enables the prometheus validation metrics.
func WithTelemetry() ValidatorOption {
	return func(v *Validator) error {
		v.telemetry = true
		return nil
	}
}

// NewValidator returns a Validator with the real clock, a no-op logger,
// DefaultRunCount and DefaultIterationCap, then applies options.
func NewValidator(options ...ValidatorOption) (*Validator, error) {
	v := &Validator{
		clock:        clockwork.NewRealClock(),
		logger:       &noOpLogger{},
		runCount:     DefaultRunCount,
		iterationCap: DefaultIterationCap,
	}
	for _, option := range options {
		if err := option(v); err != nil {
			return nil, err
		}
	}
	if v.telemetry {
		initTelemetry()
	}
	return v, nil
}

// Validate parses the expression and, on success, computes its summary
// sentence and upcoming run times. "now" is sampled once at the start of
// the call, so the returned run times are consistent with each other.
// Validate never panics: an internal fault comes back as a failed Result.
func (v *Validator) Validate(expression string) (result Result) {
	start := v.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			result = Result{Err: recoveredError(r)}
			v.logger.Error("validation panicked", "expression", expression, "error", result.Err)
		}
		if v.telemetry {
			observeValidation(v.clock.Since(start), result)
		}
	}()

	parsed, err := Parse(expression)
	if err != nil {
		v.logger.Debug("validation failed", "expression", expression, "error", err)
		return Result{Err: err}
	}

	result = Result{
		Parsed:   parsed,
		Summary:  parsed.Describe(),
		NextRuns: parsed.NextAfter(start, v.runCount, v.iterationCap),
	}
	v.logger.Debug("validation ok", "expression", expression, "summary", result.Summary)
	return result
}

// Validate checks one expression with default settings.
func Validate(expression string) Result {
	v, err := NewValidator()
	if err != nil {
		return Result{Err: err}
	}
	return v.Validate(expression)
}

func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok && err.Error() != "" {
		return fmt.Errorf("cronwhen: %w", err)
	}
	return fmt.Errorf("cronwhen: internal error during validation: %v", r)
}
