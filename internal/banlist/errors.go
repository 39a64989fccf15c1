package banlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMultipleJuniorRoyale is returned when more than one Junior Royale
	// change file exists.
	ErrMultipleJuniorRoyale = errors.New("more than one junior royale change file")

	// ErrNoHistory is returned when the changes directory holds no history files.
	ErrNoHistory = errors.New("no change files found")
)

// Reason classifies a Diagnostic.
type Reason string

const (
	ReasonUnknownCard    Reason = "unknown card"
	ReasonDuplicateCard  Reason = "card listed twice"
	ReasonUnknownSection Reason = "unknown section"
	ReasonOutsideSection Reason = "entry outside any section"
)

// Diagnostic locates one problem in a change file.
type Diagnostic struct {
	Source  string
	Section string
	Name    string
	Reason  Reason
}

func (d Diagnostic) String() string {
	if d.Section == "" {
		return fmt.Sprintf("%s: %s %q", d.Source, d.Reason, d.Name)
	}
	return fmt.Sprintf("%s [%s]: %s %q", d.Source, d.Section, d.Reason, d.Name)
}

// InvalidRecordError aborts a run when a change file fails validation.
type InvalidRecordError struct {
	Source      string
	Diagnostics []Diagnostic
}

func (e *InvalidRecordError) Error() string {
	lines := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		lines = append(lines, d.String())
	}
	return fmt.Sprintf("invalid change file %s: %s", e.Source, strings.Join(lines, "; "))
}
