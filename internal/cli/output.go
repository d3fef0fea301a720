package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type printer struct {
	out      io.Writer
	jsonMode bool
}

func newPrinter(cmd *cobra.Command) *printer {
	jsonMode, _ := cmd.Flags().GetBool(flagJSON)
	return &printer{out: cmd.OutOrStdout(), jsonMode: jsonMode}
}

// result writes v as indented JSON in --json mode and calls text otherwise.
func (p *printer) result(v any, text func(p *printer)) error {
	if !p.jsonMode {
		text(p)
		return nil
	}
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) line(msg string)    { fmt.Fprintln(p.out, msg) }
func (p *printer) success(msg string) { fmt.Fprintf(p.out, "✓ %s\n", msg) }
func (p *printer) warning(msg string) { fmt.Fprintf(p.out, "⚠ %s\n", msg) }

func (p *printer) field(label, value string) {
	fmt.Fprintf(p.out, "%-14s %s\n", label+":", value)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.RFC3339)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
