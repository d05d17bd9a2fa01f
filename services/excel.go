package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetData is one worksheet's header row plus its typed data rows.
type SheetData struct {
	Headers []string
	Rows    [][]Cell
}

// ExcelReader loads xlsx workbooks from the filesystem through excelize.
type ExcelReader struct{}

// SheetNames lists the worksheets of a workbook.
func (ExcelReader) SheetNames(filePath string) ([]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filePath, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// ReadSheet reads one worksheet into a header row plus typed cells. An empty
// sheetName selects the workbook's first sheet.
func (ExcelReader) ReadSheet(filePath, sheetName string) (*SheetData, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filePath, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", filePath)
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return &SheetData{}, nil
	}

	data := &SheetData{Headers: rows[0]}
	for r := 1; r < len(rows); r++ {
		cells := make([]Cell, len(rows[r]))
		for c, raw := range rows[r] {
			cells[c] = typedCell(f, sheetName, r+1, c+1, raw)
		}
		data.Rows = append(data.Rows, cells)
	}
	return data, nil
}

// typedCell classifies a raw cell value using the workbook's cell type
// metadata. Plain numeric cells carry no type attribute in xlsx, so unset
// cells that parse as numbers are treated as numeric.
func typedCell(f *excelize.File, sheet string, row, col int, raw string) Cell {
	if raw == "" {
		return Cell{Kind: CellEmpty}
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{Kind: CellString, Str: raw}
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return Cell{Kind: CellString, Str: raw}
	}

	switch cellType {
	case excelize.CellTypeBool:
		return Cell{Kind: CellBool, Bool: raw == "1" || strings.EqualFold(raw, "true")}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return Cell{Kind: CellNumber, Num: v}
		}
		return Cell{Kind: CellString, Str: raw}
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return Cell{Kind: CellString, Str: raw}
	default:
		return Cell{Kind: CellOther, Str: raw}
	}
}
