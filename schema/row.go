// Package schema converts between canonical records and the positional rows
// the spreadsheet backend stores. Customer rows exist in three historical
// widths (9, 17 and 19 columns); every decode converges on the canonical
// 19-column shape and every encode emits it.
package schema

import (
	"fmt"
	"strconv"
)

// Row is an ordered sequence of opaque cell values as stored in a sheet. A
// missing cell and a JSON null both count as undefined; an empty string is a
// defined, blank cell.
type Row []any

// Row widths of the canonical shapes.
const (
	CustomerRowWidth = 19
	ScheduleRowWidth = 8
	OrderRowWidth    = 8
)

func defined(row Row, i int) bool {
	return i < len(row) && row[i] != nil
}

func cellString(row Row, i int) string {
	if !defined(row, i) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func cellInt(row Row, i, def int) int {
	if !defined(row, i) {
		return def
	}
	switch v := row[i].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func cellFloat(row Row, i int, def float64) float64 {
	if !defined(row, i) {
		return def
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// cellBool matches the sheet convention where paid flags were stored either
// as real booleans or as the string "true".
func cellBool(row Row, i int) bool {
	if !defined(row, i) {
		return false
	}
	switch v := row[i].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
