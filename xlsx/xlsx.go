// Package xlsx assembles minimal Office Open XML workbooks without a
// spreadsheet library: static cell values, one plain and one date style,
// inline strings only.
package xlsx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sheet is one worksheet: a name and its rows. Row 1 is conventionally a
// header row, but the writer does not care.
type Sheet struct {
	Name string
	Rows [][]any
}

// Workbook is an ordered sequence of sheets. Sheet order determines tab
// order and 1-based internal identifiers.
type Workbook struct {
	Sheets []Sheet
}

// Bytes assembles the workbook archive fully in memory. Part order is
// fixed so identical input produces identical output.
func (w *Workbook) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	type part struct {
		name    string
		content string
	}
	parts := []part{
		{"[Content_Types].xml", contentTypesXML(len(w.Sheets))},
		{"_rels/.rels", rootRelsXML},
		{"xl/workbook.xml", workbookXML(w.Sheets)},
		{"xl/_rels/workbook.xml.rels", workbookRelsXML(len(w.Sheets))},
		{"xl/styles.xml", stylesXML},
	}
	for i, sheet := range w.Sheets {
		parts = append(parts, part{fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1), sheetXML(sheet)})
	}

	for _, part := range parts {
		fd, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %q: %w", part.name, err)
		}
		if _, err := fd.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("writing archive entry %q: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the workbook to path in one shot and returns the path.
// The archive is buffered in full first, so a failure never leaves a
// partial file behind.
func (w *Workbook) WriteFile(path string) (string, error) {
	bs, err := w.Bytes()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, bs, 0o644); err != nil {
		return "", fmt.Errorf("writing workbook %q: %w", path, err)
	}
	return path, nil
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

func sheetXML(sheet Sheet) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`)
	sb.WriteString("<sheetData>")
	for rowIdx, row := range sheet.Rows {
		sb.WriteString(`<row r="` + strconv.Itoa(rowIdx+1) + `">`)
		for colIdx, value := range row {
			sb.WriteString(cellXML(value, rowIdx+1, colIdx+1))
		}
		sb.WriteString("</row>")
	}
	sb.WriteString("</sheetData></worksheet>")
	return sb.String()
}

func workbookXML(sheets []Sheet) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`)
	sb.WriteString("<sheets>")
	for i, sheet := range sheets {
		n := strconv.Itoa(i + 1)
		sb.WriteString(`<sheet name="` + escaper.Replace(sheet.Name) + `" sheetId="` + n + `" r:id="rId` + n + `"/>`)
	}
	sb.WriteString("</sheets></workbook>")
	return sb.String()
}

func workbookRelsXML(sheetCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i := 1; i <= sheetCount; i++ {
		n := strconv.Itoa(i)
		sb.WriteString(`<Relationship Id="rId` + n +
			`" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"` +
			` Target="worksheets/sheet` + n + `.xml"/>`)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

func contentTypesXML(sheetCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	sb.WriteString(`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>`)
	sb.WriteString(`<Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>`)
	for i := 1; i <= sheetCount; i++ {
		sb.WriteString(`<Override PartName="/xl/worksheets/sheet` + strconv.Itoa(i) +
			`.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`)
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>` +
	`</Relationships>`

// Two cell formats: 0 is the general default, 1 adds the built-in short
// date number format for date cells.
const stylesXML = xmlHeader +
	`<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` +
	`<fonts count="1"><font><name val="Calibri"/><family val="2"/><sz val="11"/></font></fonts>` +
	`<fills count="1"><fill><patternFill patternType="none"/></fill></fills>` +
	`<borders count="1"><border/></borders>` +
	`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>` +
	`<cellXfs count="2">` +
	`<xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/>` +
	`<xf numFmtId="14" fontId="0" fillId="0" borderId="0" xfId="0" applyNumberFormat="1"/>` +
	`</cellXfs>` +
	`<cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>` +
	`</styleSheet>`
