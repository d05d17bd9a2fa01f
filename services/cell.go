package services

import (
	"strconv"
	"strings"
)

// CellKind discriminates raw spreadsheet cell values before normalization.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellBool
	CellOther
)

// Cell is one untyped spreadsheet cell as produced by the workbook reader.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Bool bool
}

// NormalizeCell collapses a raw cell into a trimmed string value. Empty
// cells and whitespace-only strings normalize to absent (nil); numbers use
// their shortest decimal form; booleans become "true"/"false".
func NormalizeCell(c Cell) *string {
	switch c.Kind {
	case CellEmpty:
		return nil
	case CellNumber:
		s := strconv.FormatFloat(c.Num, 'f', -1, 64)
		return &s
	case CellBool:
		s := strconv.FormatBool(c.Bool)
		return &s
	default:
		s := strings.TrimSpace(c.Str)
		if s == "" {
			return nil
		}
		return &s
	}
}
