package parkingapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Имена ручек backend для логов и метрик
const (
	endpointVendorBookings      = "fetchbookingsbyvendorid"
	endpointBookingTransactions = "fetchbookingtransaction"
	endpointUserBookingTrans    = "userbookingtrans"
	endpointNonUserBookings     = "nonuserbookings"
)

// Client клиент backend API платформы парковок
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
	observer   Observer
}

// NewClient создает новый экземпляр клиента backend API
// token опционален: при пустом значении заголовок Authorization не выставляется
func NewClient(baseURL string, token string, timeout time.Duration, log Logger, observer Observer) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: observer,
	}
}

// FetchVendorBookings получает бронирования вендора
// GET {baseURL}/vendor/fetchbookingsbyvendorid/{vendorId} -> { bookings: [...] }
func (c *Client) FetchVendorBookings(ctx context.Context, vendorID string) ([]RawBooking, error) {
	body, err := c.get(ctx, endpointVendorBookings, fmt.Sprintf("%s/vendor/fetchbookingsbyvendorid/%s", c.baseURL, vendorID))
	if err != nil {
		return nil, err
	}

	var envelope bookingsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return c.decodeRecords(endpointVendorBookings, envelope.Bookings), nil
}

// FetchBookingTransactions получает транзакции бронирований вендора
// GET {baseURL}/vendor/fetchbookingtransaction/{vendorId} -> { data: { bookings: [...] } }
func (c *Client) FetchBookingTransactions(ctx context.Context, vendorID string) ([]RawBooking, error) {
	body, err := c.get(ctx, endpointBookingTransactions, fmt.Sprintf("%s/vendor/fetchbookingtransaction/%s", c.baseURL, vendorID))
	if err != nil {
		return nil, err
	}

	var envelope transactionsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return c.decodeRecords(endpointBookingTransactions, envelope.Data.Bookings), nil
}

// FetchUserBookingTransactions получает пользовательские транзакции бронирований
// GET {baseURL}/vendor/userbookingtrans/{vendorId} -> { success, data: [...] }
func (c *Client) FetchUserBookingTransactions(ctx context.Context, vendorID string) ([]RawBooking, error) {
	return c.fetchDataEnvelope(ctx, endpointUserBookingTrans, fmt.Sprintf("%s/vendor/userbookingtrans/%s", c.baseURL, vendorID))
}

// FetchNonUserBookings получает внешние (офлайн) бронирования вендора
// GET {baseURL}/vendor/nonuserbookings/{vendorId} -> { success, data: [...] }
func (c *Client) FetchNonUserBookings(ctx context.Context, vendorID string) ([]RawBooking, error) {
	return c.fetchDataEnvelope(ctx, endpointNonUserBookings, fmt.Sprintf("%s/vendor/nonuserbookings/%s", c.baseURL, vendorID))
}

// FetchVendorBookingsWithGracefulDegradation получает бронирования вендора с graceful degradation
// При недоступности backend возвращает ErrServiceDegraded, что позволяет
// представлению отрисоваться по пустой коллекции вместо полной ошибки
func (c *Client) FetchVendorBookingsWithGracefulDegradation(ctx context.Context, vendorID string) ([]RawBooking, error) {
	c.log.Info("Fetching bookings for vendor_id=%s", vendorID)

	bookings, err := c.FetchVendorBookings(ctx, vendorID)
	if err != nil {
		// Критичная бизнес-ошибка пробрасывается дальше
		if errors.Is(err, ErrVendorNotFound) {
			c.log.Warn("Vendor id=%s not found", vendorID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, кривой ответ)
		// применяем graceful degradation
		c.log.Error("ParkingAPI unavailable, applying graceful degradation for vendor_id=%s: %v", vendorID, err)
		return nil, fmt.Errorf("%w: vendor_id=%s, error=%v", ErrServiceDegraded, vendorID, err)
	}

	c.log.Info("Successfully fetched %d bookings for vendor_id=%s", len(bookings), vendorID)
	return bookings, nil
}

// fetchDataEnvelope получает и декодирует ответ в конверте { success, data: [...] }
func (c *Client) fetchDataEnvelope(ctx context.Context, endpoint string, url string) ([]RawBooking, error) {
	body, err := c.get(ctx, endpoint, url)
	if err != nil {
		return nil, err
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !envelope.Success {
		// Backend вернул success=false - считаем коллекцию пустой, это не ошибка клиента
		c.log.Warn("ParkingAPI %s returned success=false", endpoint)
		return []RawBooking{}, nil
	}

	return c.decodeRecords(endpoint, envelope.Data), nil
}

// get выполняет GET запрос к backend и возвращает тело ответа
func (c *Client) get(ctx context.Context, endpoint string, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(endpoint, err, time.Since(start))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid vendor ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrVendorNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrInvalidResponse, err)
	}

	return body, nil
}

// decodeRecords декодирует массив записей из конверта
// Отсутствующее поле или не-массив (например, тело ошибки) дают пустую
// коллекцию, а не ошибку - представление должно отрисоваться в любом случае
func (c *Client) decodeRecords(endpoint string, raw json.RawMessage) []RawBooking {
	if len(raw) == 0 {
		return []RawBooking{}
	}

	var records []RawBooking
	if err := json.Unmarshal(raw, &records); err != nil {
		c.log.Warn("ParkingAPI %s returned non-array payload, treating as empty: %v", endpoint, err)
		return []RawBooking{}
	}

	if records == nil {
		return []RawBooking{}
	}

	return records
}
