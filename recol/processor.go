package recol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// splitFields splits a line into its fields. With a configured input
// delimiter the split is strict: nothing is trimmed and repeated
// delimiters produce empty fields. Without one the line is trimmed and
// split on runs of whitespace.
func splitFields(line string, cfg Config) []string {
	if cfg.SplitWhitespace {
		return strings.Fields(line)
	}
	return strings.Split(line, cfg.InputDelim)
}

// ProcessLine evaluates the column spec against a single input line and
// returns the output line without its terminator. Literals are emitted
// as-is; column references outside 1..len(fields) become empty strings.
func ProcessLine(line string, cfg Config) string {
	fields := splitFields(line, cfg)

	tokens := make([]string, len(cfg.Spec))
	for i, item := range cfg.Spec {
		if item.Literal {
			tokens[i] = item.Text
			continue
		}
		if item.Index >= 1 && item.Index <= len(fields) {
			tokens[i] = fields[item.Index-1]
		}
	}

	return strings.Join(tokens, cfg.OutputDelim)
}

// Run reads r line by line, processes every line against cfg and writes
// the result to w. Exactly one output line is emitted per input line; a
// final line without a terminator still gets one. Each line goes out in
// a single write so an interrupted run never tears a line.
func Run(r io.Reader, w io.Writer, cfg Config) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, ProcessLine(scanner.Text(), cfg)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
