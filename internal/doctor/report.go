package doctor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/frontkit-labs/frontkit/internal/log"
)

// PrintText writes one marker line per check, its fix when present, and a
// summary line.
func PrintText(l *log.Logger, r Report) {
	for _, e := range r.Entries {
		switch e.Status {
		case StatusPass:
			l.OK("%-8s %s", e.Name, e.Message)
		case StatusWarn:
			l.Warn("%-8s %s", e.Name, e.Message)
		default:
			l.Fail("%-8s %s", e.Name, e.Message)
		}
		if e.Fix != "" && (e.Status != StatusPass || l.Verbose()) {
			l.Printf("         fix: %s\n", e.Fix)
		}
	}
	l.Println()
	l.Printf("doctor: %s (%d passed, %d warnings, %d failed)\n",
		r.Status, r.Count(StatusPass), r.Count(StatusWarn), r.Count(StatusFail))
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	if r.Entries == nil {
		r.Entries = []Entry{}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
