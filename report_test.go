package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSession() *Session {
	return &Session{
		Content:     "tv",
		CurrentRate: 24,
		Entries: []Entry{
			{Label: "Act 1", Timecode: "00:10:00:00", Frames: 14400},
			{Label: "Act 2", Timecode: "00:12:30:12", Frames: 18012},
		},
		Total:        32412,
		DeliveryRate: 24,
		Target:       "00:22:00:00",
		Verdict:      "Over by 00:00:30:12",
	}
}

func TestSessionTable(t *testing.T) {
	got := SessionTable(testSession())
	want := [][]string{
		{"Label", "Timecode", "Frames"},
		{"Act 1", "00:10:00:00", "14400"},
		{"Act 2", "00:12:30:12", "18012"},
		{"TRT", "00:22:30:12", "32412"},
		{"Target", "00:22:00:00", ""},
		{"Result", "Over by 00:00:30:12", ""},
	}
	assert.Equal(t, want, got.Cells)

	// A feature has no TRT row.
	s := testSession()
	s.Content = "feature"
	s.Entries = s.Entries[:1]
	assert.Len(t, SessionTable(s).Cells, 4)
}

func TestTablePrint(t *testing.T) {
	table := &Table{Cells: [][]string{{"a", "b"}, {"c", ""}}}
	out := &bytes.Buffer{}
	table.Print(out, ",")
	assert.Equal(t, "a,b\nc,\n", out.String())
}

func TestTableWriteExcel(t *testing.T) {
	dir, err := ioutil.TempDir("", "tccalc")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "report.xlsx")

	require.NoError(t, SessionTable(testSession()).WriteExcel(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	cases := map[string]string{
		"A1": "Label",
		"B2": "00:10:00:00",
		"C3": "18012",
		"A4": "TRT",
		"B6": "Over by 00:00:30:12",
	}
	for cell, want := range cases {
		got, err := f.GetCellValue(reportSheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}
