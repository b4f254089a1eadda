package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column widths of the comparison table.
const (
	labelWidth  = 30
	timeWidth   = 9
	statusWidth = 15
	diffWidth   = 10
)

const separatorWidth = 65

// Printer writes the preamble and comparison table to a writer.
//
// Colour is used only when the writer is a terminal, unless the
// colour profile is forced through opts.
type Printer struct {
	w      io.Writer
	num    *message.Printer
	header lipgloss.Style
	label  lipgloss.Style
	time   lipgloss.Style
	status lipgloss.Style
	diff   lipgloss.Style
	fast   lipgloss.Color
	slow   lipgloss.Color
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	r := lipgloss.NewRenderer(w, opts...)
	return &Printer{
		w:      w,
		num:    message.NewPrinter(language.English),
		header: r.NewStyle().Bold(true),
		label:  r.NewStyle().Width(labelWidth),
		time:   r.NewStyle().Width(timeWidth).Align(lipgloss.Right),
		status: r.NewStyle().Width(statusWidth),
		diff:   r.NewStyle().Width(diffWidth).Align(lipgloss.Right),
		fast:   lipgloss.Color("2"),
		slow:   lipgloss.Color("3"),
	}
}

// Preamble prints the run parameters and host description.
func (p *Printer) Preamble(h Host, iterations int) {
	fmt.Fprintln(p.w, p.num.Sprintf("Benchmarking ROB workloads (%d iterations)", iterations))
	fmt.Fprintf(p.w, "Architecture: %s/%s, %d CPUs\n", h.GOOS, h.GOARCH, h.NumCPU)
	if len(h.Features) > 0 {
		fmt.Fprintf(p.w, "CPU features: %s\n", strings.Join(h.Features, " "))
	}
	fmt.Fprintln(p.w, strings.Repeat("─", separatorWidth))
}

// Table prints the comparison table for rows.
func (p *Printer) Table(rows []Row) {
	sep := strings.Repeat("-", separatorWidth)

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.header.Render("=== Performance Results ==="))
	fmt.Fprintln(p.w, p.line(
		p.header.Inherit(p.label).Render("Case Description"),
		p.header.Inherit(p.time).Render("Time (us)"),
		p.header.Inherit(p.status).Render("ROB Status"),
		p.header.Inherit(p.diff).Render("% Diff"),
	))
	fmt.Fprintln(p.w, sep)
	for _, row := range rows {
		fmt.Fprintln(p.w, p.row(row))
	}
	fmt.Fprintln(p.w, sep)
}

func (p *Printer) row(r Row) string {
	status := p.status
	if r.Baseline {
		status = status.Foreground(p.slow)
	} else {
		status = status.Foreground(p.fast)
	}
	return p.line(
		p.label.Render(r.Label),
		p.time.Render(strconv.FormatInt(r.Micros, 10)),
		status.Render(r.Status),
		p.diff.Render(FormatDiff(r)),
	)
}

func (p *Printer) line(cells ...string) string {
	return strings.Join(cells, " ")
}

// FormatDiff returns the text of the diff column for r:
// "-" for the baseline, "n/a" when no diff could be computed,
// otherwise the percentage with one decimal.
func FormatDiff(r Row) string {
	switch {
	case r.Baseline:
		return "-"
	case !r.HasDiff:
		return "n/a"
	default:
		return fmt.Sprintf("%.1f%%", r.Diff)
	}
}
