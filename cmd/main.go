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

	cancelBookingHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/cancel_booking"
	cancelPaymentHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/cancel_payment"
	completePaymentHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/complete_payment"
	createBookingHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/create_booking"
	dismissScreenshotHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/dismiss_screenshot"
	getScreenshotHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/get_screenshot"
	getSessionHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/get_session"
	openPaymentHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/open_payment"
	qrImageHandler "github.com/m04kA/OTO-BookingService/internal/api/handlers/qr_image"
	"github.com/m04kA/OTO-BookingService/internal/api/middleware"
	"github.com/m04kA/OTO-BookingService/internal/capture"
	"github.com/m04kA/OTO-BookingService/internal/config"
	bookingsRepo "github.com/m04kA/OTO-BookingService/internal/infra/storage/bookings"
	"github.com/m04kA/OTO-BookingService/internal/integrations/qrserver"
	"github.com/m04kA/OTO-BookingService/internal/integrations/whatsapp"
	sessionService "github.com/m04kA/OTO-BookingService/internal/service/session"
	"github.com/m04kA/OTO-BookingService/pkg/logger"
	"github.com/m04kA/OTO-BookingService/pkg/metrics"
	"github.com/m04kA/OTO-BookingService/pkg/scheduler"
)

// schedulerAdapter подгоняет pkg/scheduler под интерфейс сессии
type schedulerAdapter struct {
	s *scheduler.Scheduler
}

func (a schedulerAdapter) Schedule(delay time.Duration, fn func()) sessionService.ScheduledTask {
	return a.s.Schedule(delay, fn)
}

func main() {
	// Переменные окружения из .env (если есть)
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

	log.Info("Starting OTO-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Локальное хранилище бронирований
	repo := bookingsRepo.NewRepository(cfg.Storage.File)
	log.Info("Booking store at %s", cfg.Storage.File)

	// Интеграции
	qrClient := qrserver.NewClient(cfg.QRService.BaseURL, cfg.QRService.Size)
	waClient := whatsapp.NewClient(
		cfg.WhatsApp.BaseURL,
		cfg.WhatsApp.Phone,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	log.Info("Integrations initialized (QR=%s size=%s, WhatsApp=%s timeout=%ds)",
		cfg.QRService.BaseURL, cfg.QRService.Size, cfg.WhatsApp.BaseURL, cfg.WhatsApp.Timeout)

	// Сессия бронирования
	var sessionMetrics sessionService.MetricsRecorder
	if metricsCollector != nil {
		sessionMetrics = metricsCollector
	}

	session := sessionService.NewService(
		repo,
		qrClient,
		waClient,
		capture.NewRenderer(),
		schedulerAdapter{s: scheduler.New()},
		sessionMetrics,
		log,
		sessionService.Config{
			PayeeVPA:        cfg.Payment.PayeeVPA,
			PayeeName:       cfg.Payment.PayeeName,
			TransactionNote: cfg.Payment.TransactionNote,
			CoachName:       cfg.Confirmation.CoachName,
			CaptureDelay:    time.Duration(cfg.Confirmation.CaptureDelayMS) * time.Millisecond,
		},
	)

	// Читаем коллекцию из хранилища один раз при старте
	if err := session.Load(context.Background()); err != nil {
		log.Fatal("Failed to load bookings from store: %v", err)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(session, log)
	openPayment := openPaymentHandler.NewHandler(session, log)
	completePayment := completePaymentHandler.NewHandler(session, log)
	cancelPayment := cancelPaymentHandler.NewHandler(session, log)
	cancelBooking := cancelBookingHandler.NewHandler(session, log)
	getSession := getSessionHandler.NewHandler(session, log)
	qrImage := qrImageHandler.NewHandler(session, log)
	getScreenshot := getScreenshotHandler.NewHandler(session, log)
	dismissScreenshot := dismissScreenshotHandler.NewHandler(session, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Создание бронирования (форма)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Платёжный поток
	api.HandleFunc("/bookings/{bookingId}/pay", openPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/confirm-payment", completePayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payment/cancel", cancelPayment.Handle).Methods(http.MethodPost)

	// Отмена бронирования (с явным подтверждением)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Локальный рендер QR-кода
	api.HandleFunc("/bookings/{bookingId}/qr.png", qrImage.Handle).Methods(http.MethodGet)

	// Состояние сессии и скриншот подтверждения
	api.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/screenshot", getScreenshot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/screenshot", dismissScreenshot.Handle).Methods(http.MethodDelete)

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
