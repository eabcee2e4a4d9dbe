package cronwhen

import (
	"math/bits"
	"strconv"
	"strings"
)

// fieldSet is a fixed-capacity bitset over one field's value domain.
// The widest domain (minutes, 0-59) fits in a uint64, so a single word
// covers all five fields and enumerates in ascending order for free.
type fieldSet uint64

func (s fieldSet) has(v int) bool {
	return s&(1<<uint(v)) != 0
}

func (s *fieldSet) add(v int) {
	*s |= 1 << uint(v)
}

func (s fieldSet) count() int {
	return bits.OnesCount64(uint64(s))
}

func (s fieldSet) values() []int {
	out := make([]int, 0, s.count())
	for v := 0; s != 0; v++ {
		if s.has(v) {
			out = append(out, v)
			s &^= 1 << uint(v)
		}
	}
	return out
}

func fullSet(min, max int) fieldSet {
	var s fieldSet
	for v := min; v <= max; v++ {
		s.add(v)
	}
	return s
}

// Field is the resolved meaning of one cron position: the concrete set
// of matching values and whether the literal input was a bare "*". The
// wildcard flag is what drives the day-of-month/day-of-week OR rule, so
// it is set only for the sole token "*", never for "*/n" or full ranges.
type Field struct {
	spec     fieldSpec
	set      fieldSet
	wildcard bool
}

// Label returns the display name of the cron position, e.g. "Minute".
func (f Field) Label() string {
	return f.spec.label
}

// Values returns the matching values in ascending order.
func (f Field) Values() []int {
	return f.set.values()
}

// Wildcard reports whether the field's literal input was "*".
func (f Field) Wildcard() bool {
	return f.wildcard
}

func (f Field) full() bool {
	return f.set == fullSet(f.spec.min, f.spec.max)
}

func (f Field) single() (int, bool) {
	if f.set.count() != 1 {
		return 0, false
	}
	return f.set.values()[0], true
}

// uniformStep reports the step of an arithmetic progression that starts
// at the field minimum, has more than two members, and saturates the
// domain (no further value would fit below max). This is exactly the
// set a "*/step" token generates.
func (f Field) uniformStep() (int, bool) {
	vals := f.set.values()
	if len(vals) <= 2 || vals[0] != f.spec.min {
		return 0, false
	}
	step := vals[1] - vals[0]
	for i := 2; i < len(vals); i++ {
		if vals[i]-vals[i-1] != step {
			return 0, false
		}
	}
	if vals[len(vals)-1]+step <= f.spec.max {
		return 0, false
	}
	return step, true
}

func (f Field) display(v int) string {
	if f.spec.display != nil {
		return f.spec.display(v)
	}
	return strconv.Itoa(v)
}

// parseField resolves one field's text against its spec. The grammar is
// a comma list of "*", "*/n", "a", "a-b" and "a-b/n" tokens; anything
// else fails with an error naming the field.
func parseField(text string, spec fieldSpec) (Field, *ParseError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Field{}, emptyFieldError(spec, "field is empty")
	}

	f := Field{spec: spec}
	if text == "*" {
		f.set = fullSet(spec.min, spec.max)
		f.wildcard = true
		return f, nil
	}

	for _, segment := range strings.Split(text, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return Field{}, emptyFieldError(spec, "empty list segment")
		}
		if err := parseSegment(segment, spec, &f.set); err != nil {
			return Field{}, err
		}
	}
	return f, nil
}

func parseSegment(segment string, spec fieldSpec, set *fieldSet) *ParseError {
	base := segment
	stepText := ""
	hasStep := false
	if i := strings.Index(segment, "/"); i >= 0 {
		base = segment[:i]
		stepText = segment[i+1:]
		hasStep = true
		if strings.Contains(stepText, "/") {
			return unsupportedTokenError(spec, segment)
		}
	}

	start, end := 0, 0
	switch {
	case base == "*":
		start, end = spec.min, spec.max
	case strings.Contains(base, "-"):
		a, b, ok := splitRange(base)
		if !ok {
			return unsupportedTokenError(spec, segment)
		}
		if a < spec.min || a > spec.inputMax {
			return outOfRangeError(spec, a)
		}
		if b < spec.min || b > spec.inputMax {
			return outOfRangeError(spec, b)
		}
		if a > b {
			return invalidRangeOrderError(spec, a, b)
		}
		start, end = a, b
	default:
		// Bare values take no step; "a/n" is not part of the grammar.
		if hasStep {
			return unsupportedTokenError(spec, segment)
		}
		v, err := strconv.Atoi(base)
		if err != nil {
			return unsupportedTokenError(spec, segment)
		}
		if v < spec.min || v > spec.inputMax {
			return outOfRangeError(spec, v)
		}
		set.add(normalizeValue(spec, v))
		return nil
	}

	step := 1
	if hasStep {
		n, err := strconv.Atoi(stepText)
		if err != nil || n <= 0 {
			return invalidStepError(spec, stepText)
		}
		step = n
	}

	for v := start; v <= end; v += step {
		set.add(normalizeValue(spec, v))
	}
	return nil
}

func normalizeValue(spec fieldSpec, v int) int {
	if spec.normalize != nil {
		return spec.normalize(v)
	}
	return v
}

func splitRange(base string) (int, int, bool) {
	parts := strings.SplitN(base, "-", 2)
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
