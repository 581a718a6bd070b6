package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"localeaudit/internal/domain"
	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
)

// PreviewColumnWidth is the minimum width of the table preview column.
const PreviewColumnWidth = 50

// Formats lists the accepted --format values.
var Formats = []string{"table", "json", "csv", "yaml"}

// New returns the renderer of format.
func New(format string, colored bool, previewWidth int) (output.Renderer, error) {
	switch format {
	case "", "table":
		return NewTable(colored, previewWidth), nil
	case "json":
		return JSON{}, nil
	case "csv":
		return CSV{}, nil
	case "yaml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want one of %v)", domain.ErrInvalidConfig, format, Formats)
	}
}

type JSON struct{}

func (JSON) Render(w io.Writer, report *entities.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// CSV writes the column headers then one record per row.
type CSV struct{}

func (CSV) Render(w io.Writer, report *entities.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(entities.Columns); err != nil {
		return err
	}
	for _, r := range report.Rows {
		if err := cw.Write([]string{r.FilePath, r.Key, r.Preview}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type YAML struct{}

func (YAML) Render(w io.Writer, report *entities.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
