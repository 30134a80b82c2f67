package get_dashboard_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
	"github.com/m04kA/SMC-VendorDashboard/internal/service/records"
)

// UseCase use case свода дашборда вендора
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

// Execute строит свод по объединённому снапшоту транзакций вендора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.VendorID == "" {
		return nil, fmt.Errorf("%w: vendorID is required", ErrInvalidInput)
	}

	snapshot, err := uc.snapshots.LoadTransactions(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, records.ErrVendorNotFound) {
			uc.logger.Warn("Execute: vendor=%s not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("Execute: failed to load snapshot for vendor=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: Execute - load snapshot: %v", ErrInternal, err)
	}

	agg := domain.BuildAggregate(snapshot)

	uc.logger.Info("Execute: aggregated %d records for vendor=%s (subscriptions=%d, total=%s)",
		agg.TotalBookings, req.VendorID, agg.Subscriptions, agg.TotalAmount.StringFixed(2))

	return ToResponse(req.VendorID, agg), nil
}
