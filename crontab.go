package cronwhen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LintEntry is the validation outcome for one crontab line. Line is
// 1-based; Expression is the five-field portion that was validated
// (command tails and environment assignments are not part of it).
type LintEntry struct {
	Line       int
	Expression string
	Result     Result
}

// LintCrontab reads a crontab-style document and validates every entry,
// skipping blank lines, comments and FOO=bar environment assignments. A
// line with at least five fields is validated on its first five (the
// rest is the command); shorter lines are validated whole so they fail
// with a field-count error. Entries are checked concurrently, at most
// concurrency at a time (0 means GOMAXPROCS), and returned in input
// order. The error is non-nil only for a read failure or a canceled
// context, never for invalid expressions.
func (v *Validator) LintCrontab(ctx context.Context, r io.Reader, concurrency int) ([]LintEntry, error) {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	type pending struct {
		line int
		expr string
	}
	var todo []pending

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		expr, ok := crontabExpression(scanner.Text())
		if !ok {
			continue
		}
		todo = append(todo, pending{line: line, expr: expr})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cronwhen: reading crontab: %w", err)
	}

	entries := make([]LintEntry, len(todo))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, p := range todo {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i] = LintEntry{
				Line:       p.line,
				Expression: p.expr,
				Result:     v.Validate(p.expr),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// crontabExpression extracts the five-field expression from one
// crontab line, reporting false for lines that carry no schedule.
func crontabExpression(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	fields := strings.Fields(line)
	// Environment assignments (FOO=bar) are legal crontab lines but
	// hold no schedule. No cron field ever contains "=".
	if strings.Contains(fields[0], "=") {
		return "", false
	}
	if len(fields) >= int(numFields) {
		return strings.Join(fields[:numFields], " "), true
	}
	return line, true
}
