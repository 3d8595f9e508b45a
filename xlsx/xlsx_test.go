package xlsx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		1: "A", 2: "B", 26: "Z", 27: "AA", 52: "AZ", 702: "ZZ", 703: "AAA",
	}
	for index, want := range cases {
		if got := ColumnLetter(index); got != want {
			t.Errorf("ColumnLetter(%d) = %q, expected %q", index, got, want)
		}
	}
}

func TestDateSerial(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), 45292},
	}
	for _, tc := range cases {
		if got := dateSerial(tc.date); got != tc.want {
			t.Errorf("dateSerial(%v) = %d, expected %d", tc.date, got, tc.want)
		}
	}
}

func TestCellXML(t *testing.T) {
	cases := []struct {
		value    any
		row, col int
		want     string
	}{
		{nil, 1, 1, `<c r="A1"/>`},
		{42, 1, 2, `<c r="B1"><v>42</v></c>`},
		{int64(7), 3, 1, `<c r="A3"><v>7</v></c>`},
		{3.14, 2, 1, `<c r="A2"><v>3.14</v></c>`},
		// Plain decimal notation even at magnitudes where the default
		// formatting would switch to an exponent.
		{1e21, 1, 1, `<c r="A1"><v>1000000000000000000000</v></c>`},
		{0.0000001, 1, 1, `<c r="A1"><v>0.0000001</v></c>`},
		{"plain", 1, 1, `<c r="A1" t="inlineStr"><is><t xml:space="preserve">plain</t></is></c>`},
		{`a<b&"c"`, 1, 1, `<c r="A1" t="inlineStr"><is><t xml:space="preserve">a&lt;b&amp;&quot;c&quot;</t></is></c>`},
		{time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC), 1, 1, `<c r="A1" s="1"><v>1</v></c>`},
	}
	for _, tc := range cases {
		if got := cellXML(tc.value, tc.row, tc.col); got != tc.want {
			t.Errorf("cellXML(%v, %d, %d) = %s, expected %s", tc.value, tc.row, tc.col, got, tc.want)
		}
	}
}

func TestWorkbookParts(t *testing.T) {
	wb := &Workbook{Sheets: []Sheet{
		{Name: "One", Rows: [][]any{{"a"}}},
		{Name: "Two", Rows: [][]any{{1, 2}}},
	}}
	bs, err := wb.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(bs), int64(len(bs)))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/styles.xml",
		"xl/worksheets/sheet1.xml",
		"xl/worksheets/sheet2.xml",
	}
	if len(zr.File) != len(expected) {
		t.Fatalf("expected %d parts, got %d", len(expected), len(zr.File))
	}
	for i, want := range expected {
		if zr.File[i].Name != want {
			t.Errorf("part %d: got %q, expected %q", i, zr.File[i].Name, want)
		}
	}

	fd, err := zr.File[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	var manifest bytes.Buffer
	if _, err := manifest.ReadFrom(fd); err != nil {
		t.Fatal(err)
	}
	fd.Close()
	for _, sheet := range []string{"/xl/worksheets/sheet1.xml", "/xl/worksheets/sheet2.xml"} {
		if !strings.Contains(manifest.String(), `PartName="`+sheet+`"`) {
			t.Errorf("content types manifest is missing an override for %s", sheet)
		}
	}
}

func TestWorkbookDeterministic(t *testing.T) {
	wb := &Workbook{Sheets: []Sheet{{Name: "S", Rows: [][]any{{"x", 1, nil, 2.5}}}}}
	first, err := wb.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	second, err := wb.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("workbook bytes are not reproducible across builds")
	}
}

func TestWorkbookReadableByExcelize(t *testing.T) {
	wb := &Workbook{Sheets: []Sheet{
		{Name: "First", Rows: [][]any{
			{"Header A", "Header B"},
			{"text & more", 42},
			{nil, 2.5},
		}},
		{Name: "Second", Rows: [][]any{{"only"}}},
	}}
	bs, err := wb.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(bs))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "First" || sheets[1] != "Second" {
		t.Fatalf("unexpected sheet list %v", sheets)
	}

	cases := map[string]string{
		"A1": "Header A",
		"B1": "Header B",
		"A2": "text & more",
		"B2": "42",
		"A3": "",
		"B3": "2.5",
	}
	for ref, want := range cases {
		got, err := f.GetCellValue("First", ref)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("First!%s = %q, expected %q", ref, got, want)
		}
	}
}
