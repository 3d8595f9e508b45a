package xlsx

import (
	"fpoint.dev/cosmic"
)

// ReportWorkbook builds the three-sheet measurement report: a total
// summary, one row per functional process, and one row per data movement.
func ReportWorkbook(m *cosmic.Measurement) *Workbook {
	return &Workbook{Sheets: []Sheet{
		{Name: "Summary", Rows: summaryRows(m)},
		{Name: "Functional Processes", Rows: processRows(m)},
		{Name: "Data Movements", Rows: movementRows(m)},
	}}
}

// ReportXLSX returns the measurement report workbook as archive bytes.
func ReportXLSX(m *cosmic.Measurement) ([]byte, error) {
	return ReportWorkbook(m).Bytes()
}

// WriteReport writes the measurement report to path and returns the path.
func WriteReport(m *cosmic.Measurement, path string) (string, error) {
	return ReportWorkbook(m).WriteFile(path)
}

func summaryRows(m *cosmic.Measurement) [][]any {
	return [][]any{
		{"Metric", "Value"},
		{"Total CFP", m.TotalCFP()},
	}
}

func processRows(m *cosmic.Measurement) [][]any {
	rows := [][]any{{
		"Functional Process",
		"Trigger",
		"Object of Interest",
		"Description",
		"Entry (E)",
		"Exit (X)",
		"Read (R)",
		"Write (W)",
		"Total CFP",
	}}
	for _, sum := range cosmic.Summarize(m) {
		rows = append(rows, []any{
			sum.Name,
			opt(sum.Trigger),
			opt(sum.ObjectOfInterest),
			opt(sum.Description),
			sum.Entries,
			sum.Exits,
			sum.Reads,
			sum.Writes,
			sum.TotalCFP,
		})
	}
	return rows
}

func movementRows(m *cosmic.Measurement) [][]any {
	rows := [][]any{{
		"Functional Process",
		"Sequence",
		"Movement Type",
		"Description",
		"Object of Interest",
		"Trigger",
		"Code Reference",
		"Notes",
	}}
	for i := range m.Processes {
		p := &m.Processes[i]
		for seq, mv := range p.Movements {
			rows = append(rows, []any{
				p.Name,
				seq + 1,
				string(mv.Type),
				mv.Description,
				opt(mv.ObjectOfInterest),
				opt(mv.Trigger),
				opt(mv.CodeReference),
				opt(mv.Notes),
			})
		}
	}
	return rows
}

// opt turns an unset string field into an absent cell instead of an empty
// inline string.
func opt(s string) any {
	if s == "" {
		return nil
	}
	return s
}
