package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Sheet1"

// Table is a report whose first row is the label row.
type Table struct {
	Cells [][]string
}

// SessionTable lays out a session as (label, timecode, frames) rows.
func SessionTable(s *Session) *Table {
	t := &Table{Cells: [][]string{{"Label", "Timecode", "Frames"}}}
	for _, e := range s.Entries {
		t.Cells = append(t.Cells, []string{e.Label, e.Timecode, strconv.Itoa(e.Frames)})
	}
	if s.Content == "tv" {
		t.Cells = append(t.Cells, []string{"TRT", s.TRT(), strconv.Itoa(s.Total)})
	}
	if s.Verdict != "" {
		t.Cells = append(t.Cells, []string{"Target", s.Target, ""})
		t.Cells = append(t.Cells, []string{"Result", s.Verdict, ""})
	}
	return t
}

// Print writes the table to w, fields separated by sep.
func (t *Table) Print(w io.Writer, sep string) {
	for _, row := range t.Cells {
		for j, val := range row {
			if j != 0 {
				fmt.Fprint(w, sep)
			}
			fmt.Fprint(w, val)
		}
		fmt.Fprint(w, "\n")
	}
}

// WriteExcel saves the table as an excel file. Existing file will be overridden.
func (t *Table) WriteExcel(path string) error {
	f := excelize.NewFile()
	for i, row := range t.Cells {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			// frame counts are kept as numbers.
			var v interface{} = val
			if n, err := strconv.Atoi(val); err == nil && j == 2 {
				v = n
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "saving %v", path)
	}
	return nil
}
