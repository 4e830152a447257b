package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Columns lists the table header in output order
var Columns = []string{"relative_dir", "name", "size_bytes", "size_display", "modified_at", "modified_display", "owner"}

// numeric columns are right aligned
var rightAligned = map[int]bool{2: true, 4: true}

const columnGap = "  "

// Renderer writes a Result in a specific output format
type Renderer func(w io.Writer, result *Result) error

// NewRenderer returns the renderer for format
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return RenderTable, nil
	case FormatJSON:
		return RenderJSON, nil
	case FormatYAML:
		return RenderYAML, nil
	}

	return nil, fmt.Errorf("unknown output format %#q, expected one of %s, %s, %s", format, FormatTable, FormatJSON, FormatYAML)
}

// RenderTable writes the records as aligned text columns with a header line
func RenderTable(w io.Writer, result *Result) error {
	rows := make([][]string, 0, len(result.Records)+1)
	rows = append(rows, Columns)

	for _, record := range result.Records {
		rows = append(rows, []string{
			record.RelativeDir,
			record.Name,
			strconv.FormatUint(record.SizeBytes, 10),
			record.SizeDisplay,
			strconv.FormatFloat(record.ModifiedAt, 'f', 6, 64),
			record.ModifiedDisplay,
			record.Owner,
		})
	}

	widths := make([]int, len(Columns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var line strings.Builder
	for _, row := range rows {
		line.Reset()

		for i, cell := range row {
			if i > 0 {
				line.WriteString(columnGap)
			}

			last := i == len(row)-1

			switch {
			case rightAligned[i]:
				line.WriteString(runewidth.FillLeft(cell, widths[i]))
			case last:
				line.WriteString(cell)
			default:
				line.WriteString(runewidth.FillRight(cell, widths[i]))
			}
		}

		line.WriteByte('\n')

		if _, err := io.WriteString(w, line.String()); err != nil {
			return errors.Wrap(err, "write table")
		}
	}

	return nil
}

// RenderJSON writes the records as JSON array
func RenderJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	records := result.Records
	if records == nil {
		records = []FileRecord{}
	}

	if err := encoder.Encode(records); err != nil {
		return errors.Wrap(err, "encode json")
	}

	return nil
}

// RenderYAML writes the records as YAML sequence
func RenderYAML(w io.Writer, result *Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	records := result.Records
	if records == nil {
		records = []FileRecord{}
	}

	if err := encoder.Encode(records); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "close yaml encoder")
	}

	return nil
}
