package get_booking_table

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VendorDashboard/internal/service/records"
)

// UseCase use case табличного представления бронирований вендора
// Снапшот прогоняется через фильтр по периоду, фильтр по статусу и
// стабильную сортировку - в этом порядке
type UseCase struct {
	snapshots SnapshotService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(snapshots SnapshotService, logger Logger) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Execute строит отфильтрованное и отсортированное табличное представление
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	snapshot, err := uc.snapshots.LoadBookings(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, records.ErrVendorNotFound) {
			uc.logger.Warn("Execute: vendor=%s not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("Execute: failed to load snapshot for vendor=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: Execute - load snapshot: %v", ErrInternal, err)
	}

	filtered := filterByDateRange(snapshot, req.From, req.To)
	filtered = filterByStatus(filtered, req.Status)
	sortRecords(filtered, req.SortBy, req.Order)

	uc.logger.Info("Execute: vendor=%s table built: %d of %d records after filters, sort=%s %s",
		req.VendorID, len(filtered), len(snapshot), req.SortBy, req.Order)

	return ToResponse(req.VendorID, filtered), nil
}
