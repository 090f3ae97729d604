package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// StartAtEditLayout — машинно-редактируемый вид даты: 24-часовое время и AM/PM.
	StartAtEditLayout = "2006-01-02 15:04 PM"
	startAtTimeLayout = "3:04 pm"
)

// startAtInputLayouts перечисляет форматы, которые принимает ParseStartAt.
var startAtInputLayouts = []string{
	StartAtEditLayout,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Reservation — бронь столика для одного клиента.
// Поля закрыты: инварианты проверяются в сеттерах в момент присваивания.
type Reservation struct {
	id         int64
	customerID int64
	numGuests  int
	startAt    time.Time
	notes      string
}

// ReservationParams — сырые значения для конструирования резерва
// (из формы или из строки хранилища).
type ReservationParams struct {
	ID         int64
	CustomerID int64
	NumGuests  int
	StartAt    time.Time
	// Notes == nil соответствует NULL и даёт пустую строку.
	Notes *string
}

// NewReservation собирает резерв, прогоняя каждое поле через его сеттер.
func NewReservation(p ReservationParams) (*Reservation, error) {
	r := &Reservation{id: p.ID}

	if p.CustomerID != 0 {
		if err := r.SetCustomerID(p.CustomerID); err != nil {
			return nil, err
		}
	}
	if err := r.SetNumGuests(p.NumGuests); err != nil {
		return nil, err
	}
	if err := r.SetStartAt(p.StartAt); err != nil {
		return nil, err
	}
	if p.Notes != nil {
		r.SetNotes(*p.Notes)
	}

	return r, nil
}

// ID возвращает идентификатор; ноль означает, что резерв ещё не сохранён.
func (r *Reservation) ID() int64 { return r.id }

// IsNew сообщает, что резерв ещё не записан в хранилище.
func (r *Reservation) IsNew() bool { return r.id == 0 }

// SetID фиксирует идентификатор, выданный хранилищем при вставке.
func (r *Reservation) SetID(id int64) { r.id = id }

func (r *Reservation) CustomerID() int64 { return r.customerID }

// SetCustomerID привязывает резерв к клиенту. Привязка однократная:
// повторный вызов возвращает ErrReservationNotTransferable.
func (r *Reservation) SetCustomerID(id int64) error {
	if r.customerID != 0 {
		return NewBadRequestError(ErrReservationNotTransferable)
	}
	if id <= 0 {
		return NewBadRequestError(ErrCustomerIDInvalid)
	}
	r.customerID = id
	return nil
}

func (r *Reservation) NumGuests() int { return r.numGuests }

// SetNumGuests задаёт размер компании, минимум один гость.
func (r *Reservation) SetNumGuests(n int) error {
	if n < 1 {
		return NewBadRequestError(ErrNumGuestsTooFew)
	}
	r.numGuests = n
	return nil
}

func (r *Reservation) StartAt() time.Time { return r.startAt }

// SetStartAt задаёт время начала; нулевое время не является датой.
func (r *Reservation) SetStartAt(t time.Time) error {
	if t.IsZero() {
		return NewBadRequestError(ErrStartAtInvalid)
	}
	r.startAt = t
	return nil
}

func (r *Reservation) Notes() string { return r.notes }

// SetNotes сохраняет заметку как есть; пустое значение остаётся пустой строкой.
func (r *Reservation) SetNotes(notes string) {
	r.notes = notes
}

// Validate повторно проверяет инварианты перед записью. Нужен для резервов,
// собранных в обход NewReservation (например, нулевого значения).
func (r *Reservation) Validate() error {
	var errs []error

	if r.customerID == 0 {
		errs = append(errs, ErrCustomerRequired)
	}
	if r.numGuests < 1 {
		errs = append(errs, ErrNumGuestsTooFew)
	}
	if r.startAt.IsZero() {
		errs = append(errs, ErrStartAtInvalid)
	}

	if len(errs) == 0 {
		return nil
	}
	return NewBadRequestError(errors.Join(errs...))
}

// FormattedStartAt возвращает дату для показа: "April 5th 2024, 6:30 pm".
func (r *Reservation) FormattedStartAt() string {
	t := r.startAt
	return fmt.Sprintf("%s %s %d, %s", t.Month(), ordinal(t.Day()), t.Year(), t.Format(startAtTimeLayout))
}

// UnformattedStartAt возвращает дату для формы редактирования: "2024-04-05 18:30 PM".
func (r *Reservation) UnformattedStartAt() string {
	return r.startAt.Format(StartAtEditLayout)
}

// ParseStartAt разбирает дату из пользовательского ввода. Строки без часового пояса
// интерпретируются в loc (UTC, если loc == nil).
func ParseStartAt(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewBadRequestError(ErrStartAtInvalid)
	}

	for _, layout := range startAtInputLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, NewBadRequestError(fmt.Errorf("%w: %q", ErrStartAtInvalid, value))
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
