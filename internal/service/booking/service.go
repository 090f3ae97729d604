package booking

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
	"github.com/vladislavdragonenkov/lunchly/internal/metrics"
)

const (
	entityCustomer    = "customer"
	entityReservation = "reservation"
)

// Options задаёт необязательные зависимости сервиса.
type Options struct {
	Events  domain.EventPublisher
	Metrics *metrics.BookingMetrics
	Now     func() time.Time
}

// Option настраивает Service.
type Option func(*Options)

// WithEvents включает публикацию событий после успешной записи.
func WithEvents(publisher domain.EventPublisher) Option {
	return func(opts *Options) {
		opts.Events = publisher
	}
}

// WithMetrics задаёт prometheus-метрики операций.
func WithMetrics(m *metrics.BookingMetrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(opts *Options) {
		opts.Now = now
	}
}

// Service — прикладной слой над репозиториями клиентов и резервов.
// Ошибки репозиториев возвращаются как есть; сервис только логирует,
// считает метрики и публикует события.
type Service struct {
	customers    domain.CustomerRepository
	reservations domain.ReservationRepository
	events       domain.EventPublisher
	metrics      *metrics.BookingMetrics
	logger       *log.Entry
	now          func() time.Time
}

// NewService конструирует сервис с зависимостями.
func NewService(
	customers domain.CustomerRepository,
	reservations domain.ReservationRepository,
	logger *log.Entry,
	opts ...Option,
) *Service {
	options := Options{Now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if logger == nil {
		logger = log.New().WithField("component", "booking-service")
	}

	return &Service{
		customers:    customers,
		reservations: reservations,
		events:       options.Events,
		metrics:      options.Metrics,
		logger:       logger,
		now:          options.Now,
	}
}

// SearchCustomers ищет клиентов по подстроке имени. Без совпадений возвращается пустой срез.
func (s *Service) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	start := s.now()
	customers, err := s.customers.Search(ctx, query)
	s.observe(entityCustomer, "search", start, err)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(log.Fields{"query": query, "found": len(customers)}).Debug("customers searched")
	return customers, nil
}

// GetCustomer возвращает клиента по ID.
func (s *Service) GetCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	start := s.now()
	customer, err := s.customers.Get(ctx, id)
	s.observe(entityCustomer, "get", start, err)
	return customer, err
}

// TopCustomers возвращает десять клиентов с наибольшим числом резервов.
func (s *Service) TopCustomers(ctx context.Context) ([]domain.Customer, error) {
	start := s.now()
	customers, err := s.customers.TopTenByMostReservations(ctx)
	s.observe(entityCustomer, "top", start, err)
	return customers, err
}

// SaveCustomer проверяет обязательные поля и сохраняет клиента.
func (s *Service) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	start := s.now()
	if errs := customer.Validate(); len(errs) > 0 {
		err := domain.NewBadRequestError(errors.Join(errs...))
		s.observe(entityCustomer, "save", start, err)
		return err
	}

	created := customer.IsNew()
	err := s.customers.Save(ctx, customer)
	s.observe(entityCustomer, "save", start, err)
	if err != nil {
		return err
	}

	s.logger.WithFields(log.Fields{
		"customer_id": customer.ID,
		"created":     created,
	}).Info("customer saved")

	s.publish(domain.Event{
		Type:       domain.EventTypeCustomerSaved,
		EntityID:   customer.ID,
		CustomerID: customer.ID,
		Created:    created,
	})
	return nil
}

// CustomerReservations загружает клиента и возвращает все его резервы.
func (s *Service) CustomerReservations(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	start := s.now()
	reservations, err := customer.Reservations(ctx, s.reservations)
	s.observe(entityReservation, "list", start, err)
	return reservations, err
}

// GetReservation возвращает резерв по ID.
func (s *Service) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	start := s.now()
	reservation, err := s.reservations.Get(ctx, id)
	s.observe(entityReservation, "get", start, err)
	return reservation, err
}

// SaveReservation сохраняет резерв; инварианты проверяет репозиторий до записи.
func (s *Service) SaveReservation(ctx context.Context, reservation *domain.Reservation) error {
	start := s.now()
	created := reservation.IsNew()
	err := s.reservations.Save(ctx, reservation)
	s.observe(entityReservation, "save", start, err)
	if err != nil {
		return err
	}

	s.logger.WithFields(log.Fields{
		"reservation_id": reservation.ID(),
		"customer_id":    reservation.CustomerID(),
		"created":        created,
	}).Info("reservation saved")

	s.publish(domain.Event{
		Type:       domain.EventTypeReservationSaved,
		EntityID:   reservation.ID(),
		CustomerID: reservation.CustomerID(),
		Created:    created,
	})
	return nil
}

// publish отправляет событие, если брокер настроен. Запись уже выполнена,
// поэтому ошибка публикации только логируется.
func (s *Service) publish(event domain.Event) {
	if s.events == nil {
		return
	}
	event.Timestamp = s.now().UTC()

	if err := s.events.Publish(event); err != nil {
		s.metrics.RecordEventPublished(string(event.Type), metrics.ResultError)
		s.logger.WithError(err).WithFields(log.Fields{
			"event_type": event.Type,
			"entity_id":  event.EntityID,
		}).Warn("failed to publish event")
		return
	}
	s.metrics.RecordEventPublished(string(event.Type), metrics.ResultOK)
}

func (s *Service) observe(entity, operation string, start time.Time, err error) {
	result := resultOf(err)
	s.metrics.RecordOperation(entity, operation, result, s.now().Sub(start))

	if result == metrics.ResultError {
		s.logger.WithError(err).WithFields(log.Fields{
			"entity":    entity,
			"operation": operation,
		}).Error("storage operation failed")
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case domain.IsNotFound(err):
		return metrics.ResultNotFound
	case domain.IsBadRequest(err):
		return metrics.ResultBadRequest
	default:
		return metrics.ResultError
	}
}
