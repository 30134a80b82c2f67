package export_report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// buildBookingsCSV сериализует записи в плоский CSV отчет
// Первая строка - заголовок с колонками таблицы; значения с запятой или
// кавычкой оборачиваются в двойные кавычки с удвоением внутренних кавычек
// (стандартное экранирование RFC 4180, его выполняет encoding/csv)
func buildBookingsCSV(records []domain.BookingRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("%w: buildBookingsCSV - write header: %v", ErrInternal, err)
	}

	for i := range records {
		if err := w.Write(reportRow(&records[i])); err != nil {
			return nil, fmt.Errorf("%w: buildBookingsCSV - write row: %v", ErrInternal, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: buildBookingsCSV - flush: %v", ErrInternal, err)
	}

	return buf.Bytes(), nil
}
