package parkingapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer интерфейс для метрик запросов к backend
// Реализуется pkg/metrics; nil-observer допустим (метрики выключены)
type Observer interface {
	ObserveUpstreamRequest(endpoint string, err error, duration time.Duration)
}
