package sheets

import "strings"

// ParseCSV scans a raw CSV export into rows of cells. It is deliberately
// best-effort and never fails: quoted fields may embed commas and line
// breaks, doubled quotes inside a quoted field become a literal quote, and a
// quote that never finds its closing partner simply ends up as cell content.
// Both \r\n and bare \n terminate rows; a missing trailing newline still
// yields the final row. Cells are trimmed of surrounding whitespace after
// extraction.
//
// encoding/csv is not usable here: it rejects malformed quoting outright,
// and the sheet exports are edited by hand.
func ParseCSV(text string) [][]string {
	if text == "" {
		return nil
	}

	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	endCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	endRow := func() {
		endCell()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		var next byte
		if i+1 < len(text) {
			next = text[i+1]
		}

		switch {
		case ch == '"':
			if inQuotes && next == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			endCell()
		case (ch == '\n' || (ch == '\r' && next == '\n')) && !inQuotes:
			endRow()
			if ch == '\r' {
				i++
			}
		default:
			// Stray \r bytes never survive into cells.
			if ch != '\r' {
				cell.WriteByte(ch)
			}
		}
	}

	if len(row) > 0 || cell.Len() > 0 {
		endRow()
	}
	return rows
}

// Record is one data row keyed by cleaned header names. Missing columns read
// as empty strings; repeated header names keep the last value.
type Record map[string]string

// Records pairs the header row with each data row. Rows that are just one
// empty cell (blank sheet lines) are dropped.
func Records(rows [][]string) []Record {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = cleanHeader(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, values := range rows[1:] {
		if len(values) <= 1 && (len(values) == 0 || values[0] == "") {
			continue
		}
		rec := make(Record, len(headers))
		for i, header := range headers {
			if i < len(values) {
				rec[header] = values[i]
			}
		}
		records = append(records, rec)
	}
	return records
}

// cleanHeader strips a leading byte-order-mark and surrounding whitespace;
// spreadsheet exports are known to prepend a BOM to the first header.
func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
}
