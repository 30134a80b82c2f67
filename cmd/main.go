package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	exportBookingsHandler "github.com/m04kA/SMC-VendorDashboard/internal/api/handlers/export_bookings"
	exportSummaryHandler "github.com/m04kA/SMC-VendorDashboard/internal/api/handlers/export_summary"
	exportWorkbookHandler "github.com/m04kA/SMC-VendorDashboard/internal/api/handlers/export_workbook"
	getVendorBookingsHandler "github.com/m04kA/SMC-VendorDashboard/internal/api/handlers/get_vendor_bookings"
	getVendorSummaryHandler "github.com/m04kA/SMC-VendorDashboard/internal/api/handlers/get_vendor_summary"
	"github.com/m04kA/SMC-VendorDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-VendorDashboard/internal/config"
	parkingAPIClient "github.com/m04kA/SMC-VendorDashboard/internal/integrations/parkingapi"
	recordsService "github.com/m04kA/SMC-VendorDashboard/internal/service/records"
	exportReportUC "github.com/m04kA/SMC-VendorDashboard/internal/usecase/export_report"
	getBookingTableUC "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_booking_table"
	getDashboardSummaryUC "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_dashboard_summary"
	"github.com/m04kA/SMC-VendorDashboard/pkg/logger"
	"github.com/m04kA/SMC-VendorDashboard/pkg/metrics"
)

func main() {
	// Переменные окружения из .env (если файл есть) перекрывают config.toml
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VendorDashboard...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента backend API платформы
	// nil-интерфейс наблюдателя допустим при выключенных метриках
	var upstreamObserver parkingAPIClient.Observer
	if metricsCollector != nil {
		upstreamObserver = metricsCollector
	}
	parkingClient := parkingAPIClient.NewClient(
		cfg.ParkingAPI.URL,
		cfg.ParkingAPI.Token,
		time.Duration(cfg.ParkingAPI.Timeout)*time.Second,
		log,
		upstreamObserver,
	)
	log.Info("ParkingAPI client initialized (URL=%s timeout=%ds)", cfg.ParkingAPI.URL, cfg.ParkingAPI.Timeout)

	// Инициализируем сервис снапшотов
	snapshotSvc := recordsService.NewService(parkingClient, log)

	// Инициализируем use cases
	dashboardSummaryUseCase := getDashboardSummaryUC.NewUseCase(snapshotSvc, log)
	bookingTableUseCase := getBookingTableUC.NewUseCase(snapshotSvc, log)

	var exportObserver exportReportUC.Observer
	if metricsCollector != nil {
		exportObserver = metricsCollector
	}
	exportReportUseCase := exportReportUC.NewUseCase(snapshotSvc, exportObserver, log)

	// Инициализируем handlers
	getVendorSummary := getVendorSummaryHandler.NewHandler(dashboardSummaryUseCase, log)
	getVendorBookings := getVendorBookingsHandler.NewHandler(bookingTableUseCase, log)
	exportBookings := exportBookingsHandler.NewHandler(exportReportUseCase, log)
	exportWorkbook := exportWorkbookHandler.NewHandler(exportReportUseCase, log)
	exportSummary := exportSummaryHandler.NewHandler(exportReportUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все ручки требуют X-Vendor-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Дашборд ---
	// Свод плиток дашборда
	protected.HandleFunc("/vendors/{vendorId}/summary", getVendorSummary.Handle).Methods(http.MethodGet)

	// Табличное представление бронирований с фильтрацией и сортировкой
	protected.HandleFunc("/vendors/{vendorId}/bookings", getVendorBookings.Handle).Methods(http.MethodGet)

	// --- Отчеты ---
	// Плоский CSV по бронированиям
	protected.HandleFunc("/vendors/{vendorId}/reports/bookings.csv", exportBookings.Handle).Methods(http.MethodGet)

	// XLSX книга по статусам
	protected.HandleFunc("/vendors/{vendorId}/reports/bookings.xlsx", exportWorkbook.Handle).Methods(http.MethodGet)

	// Summary CSV с числами плиток
	protected.HandleFunc("/vendors/{vendorId}/reports/summary.csv", exportSummary.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
