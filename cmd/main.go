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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/delete_booking"
	editBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/edit_booking"
	findNextWindowHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/find_next_window"
	getOccupiedDatesHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/get_occupied_dates"
	getPropertyBookingsHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/get_property_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/get_user_bookings"
	quoteBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/quote_booking"
	"github.com/m04kA/SMC-StayBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-StayBookingService/internal/config"
	"github.com/m04kA/SMC-StayBookingService/internal/infra/storage/bookingcache"
	stayServiceClient "github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	"github.com/m04kA/SMC-StayBookingService/internal/pricing"
	bookingsService "github.com/m04kA/SMC-StayBookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-StayBookingService/internal/usecase/create_booking"
	editBookingUC "github.com/m04kA/SMC-StayBookingService/internal/usecase/edit_booking"
	findNextWindowUC "github.com/m04kA/SMC-StayBookingService/internal/usecase/find_next_window"
	quoteBookingUC "github.com/m04kA/SMC-StayBookingService/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-StayBookingService/pkg/logger"
	"github.com/m04kA/SMC-StayBookingService/pkg/metrics"
)

func main() {
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

	log.Info("Starting SMC-StayBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционного клиента StayService
	stayClient := stayServiceClient.NewClient(
		cfg.StayService.URL,
		time.Duration(cfg.StayService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StayService=%s timeout=%ds)",
		cfg.StayService.URL, cfg.StayService.Timeout)

	// Инициализируем кеш бронирований
	cache := bookingcache.NewRepository()

	// Инициализируем калькулятор стоимости
	calculator := pricing.NewCalculator(
		cfg.Pricing.CleaningFeePercent,
		cfg.Pricing.ServiceFeePercent,
	)
	log.Info("Price calculator initialized (cleaning=%.2f%%, service=%.2f%%)",
		cfg.Pricing.CleaningFeePercent, cfg.Pricing.ServiceFeePercent)

	// Инициализируем сервис
	bookingSvc := bookingsService.NewService(
		cache,
		stayClient,
		cfg.Availability.ScanHorizonDays,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(cache, stayClient, calculator, log)
	editBookingUseCase := editBookingUC.NewUseCase(cache, stayClient, calculator, log)
	findNextWindowUseCase := findNextWindowUC.NewUseCase(cache, stayClient, cfg.Availability.ScanHorizonDays, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(cache, stayClient, calculator, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOccupiedDates := getOccupiedDatesHandler.NewHandler(bookingSvc, log)
	findNextWindow := findNextWindowHandler.NewHandler(findNextWindowUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь занятости объекта
	api.HandleFunc("/properties/{propertyId}/availability",
		getOccupiedDates.Handle).Methods(http.MethodGet)

	// Ближайшее свободное окно для заданной длительности
	api.HandleFunc("/properties/{propertyId}/next-window",
		findNextWindow.Handle).Methods(http.MethodGet)

	// Расчёт стоимости проживания без бронирования
	api.HandleFunc("/properties/{propertyId}/quote",
		quoteBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Изменение дат бронирования
	protected.HandleFunc("/bookings/{bookingId}", editBooking.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Сгруппированное представление бронирований гостя
	protected.HandleFunc("/users/{userId}/booked-properties",
		getUserBookings.Handle).Methods(http.MethodGet)

	// Плоский список бронирований объекта
	protected.HandleFunc("/properties/{propertyId}/bookings",
		getPropertyBookings.Handle).Methods(http.MethodGet)

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
