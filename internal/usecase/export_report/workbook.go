package export_report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// sheetNames имена листов для канонических категорий
var sheetNames = map[domain.StatusCategory]string{
	domain.StatusPending:   "Pending",
	domain.StatusApproved:  "Approved",
	domain.StatusCancelled: "Cancelled",
	domain.StatusParked:    "Parked",
	domain.StatusCompleted: "Completed",
}

// buildStatusWorkbook собирает XLSX книгу: лист на каждую категорию статуса
// плюс лист Subscriptions по ортогональному признаку подписки.
// Запись со статусом "completed" и признаком подписки легитимно попадает
// на два листа. Пустые категории получают лист с одним заголовком.
func buildStatusWorkbook(records []domain.BookingRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Первый лист excelize создаёт сам - переименовываем его в первую категорию
	first := sheetNames[domain.StatusCategories[0]]
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		return nil, fmt.Errorf("%w: buildStatusWorkbook - rename initial sheet: %v", ErrInternal, err)
	}

	var orderedSheets []string
	for _, category := range domain.StatusCategories {
		orderedSheets = append(orderedSheets, sheetNames[category])
	}
	orderedSheets = append(orderedSheets, domain.SubscriptionsSheetName)

	for _, name := range orderedSheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("%w: buildStatusWorkbook - create sheet %s: %v", ErrInternal, name, err)
		}
	}

	for _, name := range orderedSheets {
		if err := writeSheetRow(f, name, 1, reportHeader); err != nil {
			return nil, err
		}
	}

	// Следующая свободная строка каждого листа
	nextRow := make(map[string]int, len(orderedSheets))
	for _, name := range orderedSheets {
		nextRow[name] = 2
	}

	appendTo := func(sheet string, cells []string) error {
		if err := writeSheetRow(f, sheet, nextRow[sheet], cells); err != nil {
			return err
		}
		nextRow[sheet]++
		return nil
	}

	for i := range records {
		r := &records[i]
		cells := reportRow(r)

		if sheet, ok := sheetNames[r.Status]; ok {
			if err := appendTo(sheet, cells); err != nil {
				return nil, err
			}
		}

		if r.Subscription {
			if err := appendTo(domain.SubscriptionsSheetName, cells); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: buildStatusWorkbook - serialize workbook: %v", ErrInternal, err)
	}

	return buf.Bytes(), nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("%w: writeSheetRow - cell name: %v", ErrInternal, err)
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%w: writeSheetRow - sheet %s row %d: %v", ErrInternal, sheet, row, err)
	}

	return nil
}
