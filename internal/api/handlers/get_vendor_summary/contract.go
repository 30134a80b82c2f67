package get_vendor_summary

import (
	"context"

	getDashboardSummary "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_dashboard_summary"
)

// DashboardSummaryUseCase интерфейс use case свода дашборда
type DashboardSummaryUseCase interface {
	Execute(ctx context.Context, req *getDashboardSummary.Request) (*getDashboardSummary.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
