package records

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
	"github.com/m04kA/SMC-VendorDashboard/internal/integrations/parkingapi"
)

// Service сервис снапшотов бронирований вендора
// Снапшот живёт в рамках одного запроса: сервис ничего не кэширует и не
// персистит, источником правды остаётся backend
type Service struct {
	client ParkingAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса снапшотов
func NewService(client ParkingAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// LoadBookings загружает нормализованные бронирования вендора (табличное представление)
func (s *Service) LoadBookings(ctx context.Context, vendorID string) ([]domain.BookingRecord, error) {
	if vendorID == "" {
		return nil, ErrInvalidInput
	}

	s.logger.Info("LoadBookings: fetching bookings for vendor=%s", vendorID)

	raws, err := s.client.FetchVendorBookings(ctx, vendorID)
	if err != nil {
		if errors.Is(err, parkingapi.ErrVendorNotFound) {
			s.logger.Warn("LoadBookings: vendor=%s not found", vendorID)
			return nil, ErrVendorNotFound
		}
		// Недоступность backend деградирует в пустой снапшот: страница
		// должна отрисоваться с состоянием "нет данных", а не упасть
		s.logger.Error("LoadBookings: fetch failed for vendor=%s, degrading to empty snapshot: %v", vendorID, err)
		return []domain.BookingRecord{}, nil
	}

	return s.normalizeAndLog("LoadBookings", vendorID, raws), nil
}

// LoadTransactions загружает объединённый снапшот транзакций вендора
// Пользовательские и внешние транзакции запрашиваются конкурентно и
// объединяются. Отказ одной стороны деградирует её в пустую коллекцию:
// представление строится по тому, что удалось получить.
func (s *Service) LoadTransactions(ctx context.Context, vendorID string) ([]domain.BookingRecord, error) {
	if vendorID == "" {
		return nil, ErrInvalidInput
	}

	s.logger.Info("LoadTransactions: fetching transactions for vendor=%s", vendorID)

	var (
		wg          sync.WaitGroup
		userRaws    []parkingapi.RawBooking
		nonUserRaws []parkingapi.RawBooking
		userErr     error
		nonUserErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		userRaws, userErr = s.client.FetchUserBookingTransactions(ctx, vendorID)
	}()
	go func() {
		defer wg.Done()
		nonUserRaws, nonUserErr = s.client.FetchNonUserBookings(ctx, vendorID)
	}()
	wg.Wait()

	if userErr != nil && nonUserErr != nil && errors.Is(userErr, parkingapi.ErrVendorNotFound) {
		s.logger.Warn("LoadTransactions: vendor=%s not found", vendorID)
		return nil, ErrVendorNotFound
	}

	if userErr != nil {
		s.logger.Error("LoadTransactions: user side failed for vendor=%s, degrading to empty: %v", vendorID, userErr)
		userRaws = nil
	}
	if nonUserErr != nil {
		s.logger.Error("LoadTransactions: non-user side failed for vendor=%s, degrading to empty: %v", vendorID, nonUserErr)
		nonUserRaws = nil
	}

	combined := make([]parkingapi.RawBooking, 0, len(userRaws)+len(nonUserRaws))
	combined = append(combined, userRaws...)
	combined = append(combined, nonUserRaws...)

	return s.normalizeAndLog("LoadTransactions", vendorID, combined), nil
}

// LoadTransactionHistory загружает нормализованную историю транзакций бронирований
// Используется отчетом по статусам: ручка fetchbookingtransaction отдаёт
// полную историю, включая отменённые и завершённые бронирования
func (s *Service) LoadTransactionHistory(ctx context.Context, vendorID string) ([]domain.BookingRecord, error) {
	if vendorID == "" {
		return nil, ErrInvalidInput
	}

	s.logger.Info("LoadTransactionHistory: fetching booking transactions for vendor=%s", vendorID)

	raws, err := s.client.FetchBookingTransactions(ctx, vendorID)
	if err != nil {
		if errors.Is(err, parkingapi.ErrVendorNotFound) {
			s.logger.Warn("LoadTransactionHistory: vendor=%s not found", vendorID)
			return nil, ErrVendorNotFound
		}
		s.logger.Error("LoadTransactionHistory: fetch failed for vendor=%s, degrading to empty snapshot: %v", vendorID, err)
		return []domain.BookingRecord{}, nil
	}

	return s.normalizeAndLog("LoadTransactionHistory", vendorID, raws), nil
}

// normalizeAndLog нормализует сырые записи и логирует зафиксированные расхождения
func (s *Service) normalizeAndLog(op string, vendorID string, raws []parkingapi.RawBooking) []domain.BookingRecord {
	normalized, issues := Normalize(raws)

	for _, issue := range issues {
		s.logger.Warn("%s: payload drift for vendor=%s: %s", op, vendorID, issue)
	}

	s.logger.Info("%s: normalized %d records for vendor=%s (%d issues)", op, len(normalized), vendorID, len(issues))
	return normalized
}
