package xlsx

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Workbooks store dates as day counts from 1899-12-30. Day zero sits two
// days before the nominal day 1 to stay compatible with the historical
// leap-year quirk of the format.
var epoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// ColumnLetter converts a 1-based column index to its letter form:
// 1 is A, 26 is Z, 27 is AA.
func ColumnLetter(index int) string {
	var letters []byte
	for index > 0 {
		index--
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index /= 26
	}
	return string(letters)
}

// cellXML renders one cell at a 1-based row/column position. Nil renders as
// an empty positioned cell, numbers as plain values, dates as styled day
// serials, and everything else as an escaped inline string.
func cellXML(value any, row, col int) string {
	ref := ColumnLetter(col) + strconv.Itoa(row)
	switch v := value.(type) {
	case nil:
		return `<c r="` + ref + `"/>`
	case int:
		return `<c r="` + ref + `"><v>` + strconv.Itoa(v) + `</v></c>`
	case int64:
		return `<c r="` + ref + `"><v>` + strconv.FormatInt(v, 10) + `</v></c>`
	case float64:
		return `<c r="` + ref + `"><v>` + strconv.FormatFloat(v, 'f', -1, 64) + `</v></c>`
	case time.Time:
		return `<c r="` + ref + `" s="1"><v>` + strconv.Itoa(dateSerial(v)) + `</v></c>`
	default:
		return `<c r="` + ref + `" t="inlineStr"><is><t xml:space="preserve">` +
			escaper.Replace(fmt.Sprint(v)) + `</t></is></c>`
	}
}

func dateSerial(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(epoch) / (24 * time.Hour))
}
