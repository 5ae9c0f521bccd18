package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/TomLouwers/websitesara/internal/validate"
)

// WriteJSON writes the run as indented JSON.
func WriteJSON(w io.Writer, run *Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

const (
	resultsSheet = "Resultaten"
	summarySheet = "Samenvatting"
)

var resultColumns = []any{"bestand", "id", "domein", "valid", "score", "errors", "warnings", "infos"}

// WriteXLSX exports the run to a spreadsheet with a row per item and a
// summary sheet.
func WriteXLSX(path string, run *Run) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := writeResultsSheet(f, run); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := writeSummarySheet(f, run.Summary); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeResultsSheet(f *excelize.File, run *Run) error {
	if err := f.SetSheetRow(resultsSheet, "A1", &resultColumns); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(resultsSheet, 1, 1, bold); err != nil {
		return err
	}
	row := 2
	for _, file := range run.Files {
		for _, r := range file.Results {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := resultRow(file.Path, r)
			if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}
	if err := f.SetColWidth(resultsSheet, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(resultsSheet, "F", "H", 60); err != nil {
		return err
	}
	return f.SetPanes(resultsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func resultRow(path string, r *validate.Result) []any {
	return []any{
		path, r.ID, r.Domain, r.Valid, r.Score,
		strings.Join(r.Errors, "\n"),
		strings.Join(r.Warnings, "\n"),
		strings.Join(r.Infos, "\n"),
	}
}

func writeSummarySheet(f *excelize.File, s Summary) error {
	rows := [][]any{
		{"run_id", s.RunID},
		{"gestart", s.StartedAt.Format("2006-01-02 15:04:05")},
		{"bestanden", s.Files},
		{"items", s.Items},
		{"valid", s.Valid},
		{"invalid", s.Invalid},
		{"errors", s.Errors},
		{"warnings", s.Warnings},
		{"infos", s.Infos},
		{"gemiddelde score", s.AverageScore},
		{},
		{"domein", "items", "invalid", "gemiddelde score"},
	}
	for _, name := range s.DomainNames() {
		d := s.Domains[name]
		rows = append(rows, []any{name, d.Items, d.Invalid, d.AverageScore})
	}
	for _, n := range s.Notes {
		rows = append(rows, []any{n})
	}
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 24)
}
