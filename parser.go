package cronwhen

import "strings"

// Expression is a parsed five-field cron expression. It keeps the raw
// field substrings alongside the resolved fields for error reporting
// and display. An Expression is immutable once built and safe for
// concurrent use.
type Expression struct {
	raw    [numFields]string
	fields [numFields]Field
}

// Parse splits expression on whitespace and resolves each of the five
// fields in crontab order: minute, hour, day of month, month, day of
// week. The first field failure aborts the parse; the returned error is
// always a *ParseError.
func Parse(expression string) (*Expression, error) {
	tokens := strings.Fields(expression)
	if len(tokens) != int(numFields) {
		return nil, fieldCountError(len(tokens))
	}

	e := &Expression{}
	for i, token := range tokens {
		field, perr := parseField(token, fieldSpecs[i])
		if perr != nil {
			return nil, perr
		}
		e.raw[i] = token
		e.fields[i] = field
	}
	return e, nil
}

// Raw returns the expression with fields rejoined by single spaces.
func (e *Expression) Raw() string {
	return strings.Join(e.raw[:], " ")
}

// Fields returns the five resolved fields in crontab order.
func (e *Expression) Fields() []Field {
	return append([]Field(nil), e.fields[:]...)
}

func (e *Expression) Minute() Field     { return e.fields[fieldMinute] }
func (e *Expression) Hour() Field       { return e.fields[fieldHour] }
func (e *Expression) DayOfMonth() Field { return e.fields[fieldDayOfMonth] }
func (e *Expression) Month() Field      { return e.fields[fieldMonth] }
func (e *Expression) DayOfWeek() Field  { return e.fields[fieldDayOfWeek] }
