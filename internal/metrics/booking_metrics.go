package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Значения метки result.
const (
	ResultOK         = "ok"
	ResultNotFound   = "not_found"
	ResultBadRequest = "bad_request"
	ResultError      = "error"
)

// BookingMetrics содержит метрики операций над клиентами и резервами.
type BookingMetrics struct {
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	eventsPublished   *prometheus.CounterVec
}

// NewBookingMetrics регистрирует метрики в DefaultRegisterer.
func NewBookingMetrics() *BookingMetrics {
	return NewBookingMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewBookingMetricsWithRegisterer регистрирует метрики в переданном реестре;
// повторная регистрация переиспользует уже существующие коллекторы.
func NewBookingMetricsWithRegisterer(registerer prometheus.Registerer) *BookingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &BookingMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "lunchly_booking_operations_total",
			Help: "Total number of customer and reservation operations by result",
		}, []string{"entity", "operation", "result"}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "lunchly_booking_operation_duration_seconds",
			Help:    "Duration of customer and reservation operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"entity", "operation"}),
		eventsPublished: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "lunchly_events_published_total",
			Help: "Total number of domain events handed to the broker by result",
		}, []string{"event_type", "result"}),
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOperation фиксирует результат и длительность операции.
// Nil-получатель допустим: метрики тогда просто не пишутся.
func (m *BookingMetrics) RecordOperation(entity, operation, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(entity, operation, result).Inc()
	m.operationDuration.WithLabelValues(entity, operation).Observe(duration.Seconds())
}

// RecordEventPublished увеличивает счётчик отправленных событий.
func (m *BookingMetrics) RecordEventPublished(eventType, result string) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(eventType, result).Inc()
}
