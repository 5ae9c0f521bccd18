package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/TomLouwers/websitesara/internal/validate"
)

var (
	errorColor = lipgloss.Color("#F43F5E")
	warnColor  = lipgloss.Color("#F97316")
	infoColor  = lipgloss.Color("#94A3B8")
	okColor    = lipgloss.Color("#22C55E")
	border     = lipgloss.Color("#334155")
)

type styles struct {
	header  lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
	valid   lipgloss.Style
	invalid lipgloss.Style
	summary lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain,
			lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)}
	}
	return styles{
		header:  lipgloss.NewStyle().Bold(true),
		err:     lipgloss.NewStyle().Foreground(errorColor),
		warn:    lipgloss.NewStyle().Foreground(warnColor),
		info:    lipgloss.NewStyle().Foreground(infoColor),
		valid:   lipgloss.NewStyle().Foreground(okColor).Bold(true),
		invalid: lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		summary: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}

// TextReporter writes the human-readable report: one block per item and a
// summary box.
type TextReporter struct {
	w         io.Writer
	st        styles
	detect    bool
	showInfos bool
}

// NewTextReporter returns a reporter writing to w. Color is "auto",
// "always" or "never"; auto downsamples to what w supports.
func NewTextReporter(w io.Writer, color string, showInfos bool) *TextReporter {
	return &TextReporter{
		w:         w,
		st:        newStyles(color != "never"),
		detect:    color == "auto" || color == "",
		showInfos: showInfos,
	}
}

// Report writes every file and the summary.
func (t *TextReporter) Report(run *Run) error {
	var b strings.Builder
	for _, f := range run.Files {
		t.writeFile(&b, f, len(run.Files) > 1)
	}
	b.WriteString(t.summary(run.Summary))
	b.WriteString("\n")
	return t.flush(b.String())
}

func (t *TextReporter) flush(s string) error {
	var err error
	if t.detect {
		_, err = lipgloss.Fprint(t.w, s)
	} else {
		_, err = io.WriteString(t.w, s)
	}
	return err
}

func (t *TextReporter) writeFile(b *strings.Builder, f FileResult, withHeader bool) {
	if withHeader {
		fmt.Fprintf(b, "%s\n", t.st.header.Render("== "+f.Path+" =="))
	}
	if f.Converted {
		fmt.Fprintf(b, "%s\n", t.st.info.Render("legacy file converted before validation"))
	}
	for i, r := range f.Results {
		t.writeItem(b, i+1, len(f.Results), r)
	}
}

func (t *TextReporter) writeItem(b *strings.Builder, n, total int, r *validate.Result) {
	id := r.ID
	if id == "" {
		id = "(no id)"
	}
	fmt.Fprintf(b, "%s\n", t.st.header.Render(fmt.Sprintf("ITEM %d/%d: %s", n, total, id)))
	for _, e := range r.Errors {
		fmt.Fprintf(b, "  %s\n", t.st.err.Render("❌ "+e))
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(b, "  %s\n", t.st.warn.Render("⚠️  "+w))
	}
	if t.showInfos {
		for _, i := range r.Infos {
			fmt.Fprintf(b, "  %s\n", t.st.info.Render("ℹ️  "+i))
		}
	}
	verdict := t.st.valid
	if !r.Valid {
		verdict = t.st.invalid
	}
	fmt.Fprintf(b, "%s\n\n", verdict.Render(fmt.Sprintf("VALID %t | Score: %.2f", r.Valid, r.Score)))
}

func (t *TextReporter) summary(s Summary) string {
	lines := []string{
		t.st.header.Render("SUMMARY"),
		fmt.Sprintf("Items: %d  Valid: %d  Invalid: %d", s.Items, s.Valid, s.Invalid),
		fmt.Sprintf("Errors: %d  Warnings: %d  Infos: %d", s.Errors, s.Warnings, s.Infos),
		fmt.Sprintf("Average score: %.2f", s.AverageScore),
	}
	if len(s.Domains) > 1 {
		lines = append(lines, "")
		lines = append(lines, domainTable(s)...)
	}
	for _, note := range s.Notes {
		lines = append(lines, t.st.info.Render("ℹ️  "+note))
	}
	return t.st.summary.Render(strings.Join(lines, "\n"))
}

// domainTable renders one aligned row per domain.
func domainTable(s Summary) []string {
	names := s.DomainNames()
	width := runewidth.StringWidth("domain")
	for _, n := range names {
		width = max(width, runewidth.StringWidth(n))
	}
	rows := []string{fmt.Sprintf("%s  %5s  %7s  %5s", runewidth.FillRight("domain", width), "items", "invalid", "score")}
	for _, n := range names {
		d := s.Domains[n]
		rows = append(rows, fmt.Sprintf("%s  %5d  %7d  %5.2f", runewidth.FillRight(n, width), d.Items, d.Invalid, d.AverageScore))
	}
	return rows
}
