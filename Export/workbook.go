package Export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"HRKeeper/RecordStore"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one table rendered as one worksheet.
type Sheet struct {
	Name  string
	Table RecordStore.Table
}

// Workbook renders the sheets, in order, into a single XLSX file.
func Workbook(sheets ...Sheet) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %v", err)
	}

	for i, sheet := range sheets {
		index, err := f.NewSheet(sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("error creating sheet %s: %v", sheet.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet unless one of ours took its name
	if !hasSheet(sheets, "Sheet1") {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("error removing default sheet: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return buf, nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	header := make([]interface{}, len(sheet.Table.Columns))
	for i, c := range sheet.Table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return fmt.Errorf("error writing %s header: %v", sheet.Name, err)
	}
	if err := f.SetRowStyle(sheet.Name, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("error styling %s header: %v", sheet.Name, err)
	}

	for r, row := range sheet.Table.Rows {
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return fmt.Errorf("error writing %s row %d: %v", sheet.Name, r+1, err)
		}
	}

	if n := len(sheet.Table.Columns); n > 0 {
		last, err := excelize.ColumnNumberToName(n)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, "A", last, 15); err != nil {
			return err
		}
	}
	return nil
}

func hasSheet(sheets []Sheet, name string) bool {
	for _, s := range sheets {
		if s.Name == name {
			return true
		}
	}
	return false
}
