package middleware

import (
	"context"
	"net/http"
)

// VendorIDHeader заголовок с идентификатором вендора
// Аутентификацию выполняет внешний gateway, сервис доверяет заголовку
const VendorIDHeader = "X-Vendor-ID"

type contextKey string

const vendorIDKey contextKey = "vendorID"

// Auth middleware проверяет наличие заголовка X-Vendor-ID
// и кладёт идентификатор вендора в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorID := r.Header.Get(VendorIDHeader)
		if vendorID == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"message":"отсутствует заголовок X-Vendor-ID"}`))
			return
		}

		ctx := context.WithValue(r.Context(), vendorIDKey, vendorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetVendorID извлекает идентификатор вендора из контекста
func GetVendorID(ctx context.Context) (string, bool) {
	vendorID, ok := ctx.Value(vendorIDKey).(string)
	return vendorID, ok && vendorID != ""
}
