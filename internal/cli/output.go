package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Generic failure
	ExitCommandError = 2 // Bad input: unreadable or invalid problem file
)

// ExitError carries an exit code alongside an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError wraps err with an exit code and message.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError, ExitSuccess for nil.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Report is the result of a search command.
// RunID and durations are left out so output is reproducible.
type Report struct {
	Problem   string   `json:"problem"`
	Priority  string   `json:"priority"`
	Queue     string   `json:"queue"`
	Reachable bool     `json:"reachable"`
	Path      []string `json:"path,omitempty"`
	Hops      int      `json:"hops,omitempty"`
	Weight    float64  `json:"weight,omitempty"`
	Expanded  int      `json:"expanded"`
	Stale     int      `json:"stale"`
	Inserted  int      `json:"inserted"`
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// JSON writes v as indented JSON.
func (f *OutputFormatter) JSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Exists writes a reachability report.
func (f *OutputFormatter) Exists(r Report) error {
	if f.Format == "json" {
		return f.JSON(r)
	}
	return f.table([][2]string{
		{"problem", r.Problem},
		{"priority", r.Priority},
		{"queue", r.Queue},
		{"reachable", fmt.Sprint(r.Reachable)},
		{"expanded", fmt.Sprint(r.Expanded)},
		{"stale", fmt.Sprint(r.Stale)},
	})
}

// Path writes a path report.
func (f *OutputFormatter) Path(r Report) error {
	if f.Format == "json" {
		return f.JSON(r)
	}
	path := "(none)"
	if len(r.Path) > 0 {
		path = strings.Join(r.Path, " -> ")
	}
	return f.table([][2]string{
		{"problem", r.Problem},
		{"priority", r.Priority},
		{"queue", r.Queue},
		{"path", path},
		{"hops", fmt.Sprint(r.Hops)},
		{"weight", fmt.Sprint(r.Weight)},
		{"expanded", fmt.Sprint(r.Expanded)},
		{"stale", fmt.Sprint(r.Stale)},
		{"inserted", fmt.Sprint(r.Inserted)},
	})
}

// table writes aligned "key: value" rows.
func (f *OutputFormatter) table(rows [][2]string) error {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(f.Writer, "%-*s %s\n", width+1, r[0]+":", r[1]); err != nil {
			return err
		}
	}
	return nil
}
