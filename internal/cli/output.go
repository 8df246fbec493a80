package cli

import (
	"encoding/json"
	"fmt"
	"io"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}

// Emit writes v as indented JSON, or calls text in text mode.
func (f *OutputFormatter) Emit(v any, text func(w io.Writer)) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(f.Writer)
	return nil
}

func writeAppointment(w io.Writer, ap domain.Appointment) {
	if ap.Description != "" {
		fmt.Fprintf(w, "%s  %s %s-%s  %s\n", ap.ID, ap.Date, ap.StartTime, ap.EndTime, ap.Description)
		return
	}
	fmt.Fprintf(w, "%s  %s %s-%s\n", ap.ID, ap.Date, ap.StartTime, ap.EndTime)
}
