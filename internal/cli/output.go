package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w %q, want table, json or yaml", ErrUnknownFormat, format)
	}
}

// render writes v as JSON or YAML, or as a table built from header and rows.
func render(w io.Writer, format string, v any, header []string, rows [][]string) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return nil
	case formatTable:
		return renderTable(w, header, rows)
	default:
		return validateFormat(format)
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	return nil
}

// renderText writes plain text such as logs. JSON and YAML wrap it under key.
func renderText(w io.Writer, format, key, text string) error {
	if format == formatTable {
		_, err := io.WriteString(w, text)
		if err == nil && text != "" && text[len(text)-1] != '\n' {
			_, err = io.WriteString(w, "\n")
		}

		return err
	}

	return render(w, format, map[string]string{key: text}, nil, nil)
}
