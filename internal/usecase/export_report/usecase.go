package export_report

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
	"github.com/m04kA/SMC-VendorDashboard/internal/service/records"
)

// Типы содержимого артефактов
const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// UseCase use case экспорта отчетов вендора
type UseCase struct {
	snapshots SnapshotService
	observer  Observer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(snapshots SnapshotService, observer Observer, logger Logger) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		observer:  observer,
		logger:    logger,
	}
}

// ExportBookingsCSV выгружает бронирования вендора в плоский CSV
func (uc *UseCase) ExportBookingsCSV(ctx context.Context, req *Request) (*Artifact, error) {
	artifact, err := uc.export(ctx, req, formatCSV, func(ctx context.Context) (*Artifact, error) {
		snapshot, err := uc.loadSnapshot(ctx, req.VendorID, uc.snapshots.LoadBookings)
		if err != nil {
			return nil, err
		}

		data, err := buildBookingsCSV(snapshot)
		if err != nil {
			return nil, err
		}

		return &Artifact{
			Filename:    domain.BookingsReportFilename,
			ContentType: contentTypeCSV,
			Data:        data,
		}, nil
	})
	return artifact, err
}

// ExportStatusWorkbook выгружает историю транзакций вендора в XLSX книгу по статусам
func (uc *UseCase) ExportStatusWorkbook(ctx context.Context, req *Request) (*Artifact, error) {
	artifact, err := uc.export(ctx, req, formatWorkbook, func(ctx context.Context) (*Artifact, error) {
		snapshot, err := uc.loadSnapshot(ctx, req.VendorID, uc.snapshots.LoadTransactionHistory)
		if err != nil {
			return nil, err
		}

		data, err := buildStatusWorkbook(snapshot)
		if err != nil {
			return nil, err
		}

		return &Artifact{
			Filename:    domain.StatusWorkbookFilename,
			ContentType: contentTypeXLSX,
			Data:        data,
		}, nil
	})
	return artifact, err
}

// ExportSummaryCSV выгружает свод плиток дашборда в CSV "метрика на строку"
func (uc *UseCase) ExportSummaryCSV(ctx context.Context, req *Request) (*Artifact, error) {
	artifact, err := uc.export(ctx, req, formatSummaryCSV, func(ctx context.Context) (*Artifact, error) {
		snapshot, err := uc.loadSnapshot(ctx, req.VendorID, uc.snapshots.LoadTransactions)
		if err != nil {
			return nil, err
		}

		data, err := buildSummaryCSV(domain.BuildAggregate(snapshot))
		if err != nil {
			return nil, err
		}

		return &Artifact{
			Filename:    domain.SummaryReportFilename,
			ContentType: contentTypeCSV,
			Data:        data,
		}, nil
	})
	return artifact, err
}

// export общий каркас экспорта: валидация, генерация, метрики, логирование
func (uc *UseCase) export(
	ctx context.Context,
	req *Request,
	format string,
	build func(ctx context.Context) (*Artifact, error),
) (*Artifact, error) {
	if req == nil || req.VendorID == "" {
		return nil, fmt.Errorf("%w: vendorID is required", ErrInvalidInput)
	}

	artifact, err := build(ctx)

	if uc.observer != nil {
		// Пустой снапшот - no-op, а не ошибка генерации
		if errors.Is(err, ErrNoRows) {
			uc.observer.ObserveExport(format, nil)
		} else {
			uc.observer.ObserveExport(format, err)
		}
	}

	if err != nil {
		if errors.Is(err, ErrNoRows) {
			uc.logger.Info("export: vendor=%s format=%s skipped, snapshot is empty", req.VendorID, format)
		} else {
			uc.logger.Error("export: vendor=%s format=%s failed: %v", req.VendorID, format, err)
		}
		return nil, err
	}

	uc.logger.Info("export: vendor=%s format=%s generated %s (%d bytes)",
		req.VendorID, format, artifact.Filename, len(artifact.Data))
	return artifact, nil
}

// loadSnapshot загружает снапшот и применяет контракт пустого экспорта
func (uc *UseCase) loadSnapshot(
	ctx context.Context,
	vendorID string,
	load func(ctx context.Context, vendorID string) ([]domain.BookingRecord, error),
) ([]domain.BookingRecord, error) {
	snapshot, err := load(ctx, vendorID)
	if err != nil {
		if errors.Is(err, records.ErrVendorNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("%w: loadSnapshot: %v", ErrInternal, err)
	}

	if len(snapshot) == 0 {
		return nil, ErrNoRows
	}

	return snapshot, nil
}
