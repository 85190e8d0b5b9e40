package booking

import "strings"

// ExportFilename is the attachment name offered to the browser.
const ExportFilename = "my-bookings.csv"

var exportHeader = []string{
	"BookingID",
	"Event",
	"From",
	"To",
	"Location",
	"Name",
	"Email",
	"Level",
	"CreatedAt",
}

// QuoteCell wraps s in double quotes and doubles any quote inside it.
func QuoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// renderCSV writes the unquoted header, a newline, then one fully quoted row
// per item. There is no trailing newline.
func renderCSV(items []BookingItem) string {
	rows := make([]string, 0, len(items))
	for _, it := range items {
		cells := it.cells()
		quoted := make([]string, len(cells))
		for i, c := range cells {
			quoted[i] = QuoteCell(c)
		}
		rows = append(rows, strings.Join(quoted, ","))
	}
	return strings.Join(exportHeader, ",") + "\n" + strings.Join(rows, "\n")
}
