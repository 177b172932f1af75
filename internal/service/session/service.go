package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/OTO-BookingService/internal/domain"
)

// Статусные сообщения сессии, дословно из исходного виджета
const (
	MsgBookingCreated  = "Booking created — please click Pay to complete payment."
	MsgScanQR          = `Scan the QR code to complete payment, then click "I have paid".`
	MsgPaymentSuccess  = "Payment successful. Your session is confirmed!"
	MsgBookingCanceled = "Booking canceled."
)

// Config бизнес-параметры сессии
type Config struct {
	PayeeVPA        string        // виртуальный платёжный адрес получателя
	PayeeName       string        // имя получателя в платёжном URI
	TransactionNote string        // назначение платежа
	CoachName       string        // имя коуча в тексте подтверждения
	CaptureDelay    time.Duration // задержка перед capture подтверждения
}

// Service сессия бронирования: владеет коллекцией бронирований и состоянием
// платёжного потока (открытая панель, последнее бронирование, сообщение,
// артефакт скриншота).
//
// Все переходы состояния выполняются под одним мьютексом и применяются
// атомарно друг относительно друга. Единственная асинхронная ветка -
// отложенный capture подтверждения, его сбои изолированы и не трогают
// уже зафиксированный статус оплаты.
type Service struct {
	store        BookingStore
	qr           QRLinkProvider
	chat         ChatHandoff
	renderer     SnapshotRenderer
	scheduler    TaskScheduler
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
	cfg          Config

	mu              sync.Mutex
	bookings        []*domain.Booking
	activePaymentID int64 // 0 = панель закрыта
	lastBookingID   int64 // weak reference: всегда разрешается по id в коллекции
	lastIssuedID    int64
	message         string
	screenshot      []byte
	lastCaptureTask ScheduledTask
}

// NewService создает новый экземпляр сессии бронирования.
// metrics может быть nil, если сбор метрик выключен.
func NewService(
	store BookingStore,
	qr QRLinkProvider,
	chat ChatHandoff,
	renderer SnapshotRenderer,
	sched TaskScheduler,
	metrics MetricsRecorder,
	logger Logger,
	cfg Config,
) *Service {
	return &Service{
		store:        store,
		qr:           qr,
		chat:         chat,
		renderer:     renderer,
		scheduler:    sched,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
		cfg:          cfg,
	}
}

// Load читает коллекцию бронирований из хранилища.
// Вызывается один раз при старте сервиса.
func (s *Service) Load(ctx context.Context) error {
	list, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load - store error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = list
	for _, b := range list {
		if b.ID > s.lastIssuedID {
			s.lastIssuedID = b.ID
		}
	}

	s.logger.Info("Load: restored %d bookings from store", len(list))
	return nil
}

// View возвращает снимок текущего состояния сессии
func (s *Service) View(ctx context.Context) *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &View{
		Message:       s.message,
		PaymentState:  s.paymentStateLocked(),
		LastBooking:   newBookingView(domain.FindByID(s.bookings, s.lastBookingID)),
		HasScreenshot: len(s.screenshot) > 0,
	}

	if s.activePaymentID != 0 {
		if panel, err := s.paymentPanelLocked(s.activePaymentID); err == nil {
			view.ActivePayment = panel
		}
	}

	return view
}

// Screenshot возвращает PNG-артефакт подтверждения
func (s *Service) Screenshot(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.screenshot) == 0 {
		return nil, ErrNoScreenshot
	}

	out := make([]byte, len(s.screenshot))
	copy(out, s.screenshot)
	return out, nil
}

// DismissScreenshot убирает артефакт скриншота
func (s *Service) DismissScreenshot(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screenshot = nil
}

// paymentStateLocked вычисляет состояние платёжного потока.
// Вызывается только под мьютексом.
func (s *Service) paymentStateLocked() domain.PaymentState {
	if s.activePaymentID != 0 {
		return domain.PaymentStateAwaiting
	}
	if last := domain.FindByID(s.bookings, s.lastBookingID); last != nil && last.IsPaid() {
		return domain.PaymentStatePaid
	}
	return domain.PaymentStateNone
}

// recordCapture фиксирует результат попытки capture в метриках
func (s *Service) recordCapture(result string) {
	if s.metrics != nil {
		s.metrics.ConfirmationCapture(result)
	}
}
