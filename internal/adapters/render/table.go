package render

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
)

var _ output.Renderer = (*Table)(nil)

// Table renders a report as a boxed text table: two spanning header lines, the
// column headers, then one line per row.
type Table struct {
	header    *color.Color
	minWidths []int
}

// NewTable returns a table renderer. previewWidth is the minimum width of the
// preview column.
func NewTable(colored bool, previewWidth int) *Table {
	header := color.New(color.FgCyan, color.Bold)
	if colored {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	return &Table{header: header, minWidths: []int{0, 0, previewWidth}}
}

func (t *Table) Render(w io.Writer, report *entities.Report) error {
	body := lo.Map(report.Rows, func(r entities.Row, _ int) []string {
		return []string{cell(r.FilePath), cell(r.Key), cell(r.Preview)}
	})
	widths := columnWidths(append([][]string{entities.Columns}, body...), t.minWidths)

	spans := []string{report.SearchedHeader(), report.PreviewHeader()}
	inner := spannedWidth(widths)
	for _, s := range spans {
		if sw := runewidth.StringWidth(s); sw > inner {
			widths[len(widths)-1] += sw - inner
			inner = sw
		}
	}

	sep := separator(widths)
	var b strings.Builder
	b.WriteString(sep)
	for _, s := range spans {
		b.WriteString("| " + t.header.Sprint(runewidth.FillRight(s, inner)) + " |\n")
	}
	b.WriteString(sep)
	b.WriteString(t.line(entities.Columns, widths, true))
	b.WriteString(sep)
	for _, r := range body {
		b.WriteString(t.line(r, widths, false))
	}
	if len(body) > 0 {
		b.WriteString(sep)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Table) line(cells []string, widths []int, header bool) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = runewidth.FillRight(c, widths[i])
		if header {
			padded[i] = t.header.Sprint(padded[i])
		}
	}
	return "| " + strings.Join(padded, " | ") + " |\n"
}

// cell keeps multi-line values on one table line.
func cell(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(s)
}

func columnWidths(rows [][]string, minWidths []int) []int {
	widths := make([]int, len(rows[0]))
	copy(widths, minWidths)
	for _, r := range rows {
		for i, c := range r {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	return widths
}

// spannedWidth is the width available to a line spanning every column.
func spannedWidth(widths []int) int {
	return lo.Sum(widths) + 3*(len(widths)-1)
}

func separator(widths []int) string {
	parts := lo.Map(widths, func(w int, _ int) string { return strings.Repeat("-", w+2) })
	return "+" + strings.Join(parts, "+") + "+\n"
}
