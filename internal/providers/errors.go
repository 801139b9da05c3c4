package providers

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

// ErrSourceUnavailable means the source could not be read right now and a later attempt may succeed.
var ErrSourceUnavailable = errors.New("record source unavailable")

// SourceError attributes a fetch failure to a named source.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Retryable reports whether err is worth another attempt. Schema and row
// errors in the table are permanent until the file changes.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var missing *tabular.MissingColumnsError
	var row *tabular.RowError
	if errors.As(err, &missing) || errors.As(err, &row) || errors.Is(err, tabular.ErrEmptyInput) {
		return false
	}
	return true
}
