package export_workbook

import (
	"context"

	exportReport "github.com/m04kA/SMC-VendorDashboard/internal/usecase/export_report"
)

// ExportUseCase интерфейс use case экспорта XLSX книги по статусам
type ExportUseCase interface {
	ExportStatusWorkbook(ctx context.Context, req *exportReport.Request) (*exportReport.Artifact, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
