package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound сравнивается через errors.Is с любой NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest — общий вид ошибки нарушения инварианта.
	ErrBadRequest = errors.New("bad request")

	// Ошибка повторного назначения клиента резерву.
	ErrReservationNotTransferable = errors.New("reservations are not transferable")
	// Ошибка некорректного идентификатора клиента (<= 0).
	ErrCustomerIDInvalid = errors.New("customer id must be positive")
	// Ошибка сохранения резерва без клиента.
	ErrCustomerRequired = errors.New("reservation must belong to a customer")
	// Ошибка количества гостей меньше одного.
	ErrNumGuestsTooFew = errors.New("cannot make reservation for less than 1 guest")
	// Ошибка некорректной даты начала резерва.
	ErrStartAtInvalid = errors.New("start_at must be a valid date and time")
	// Ошибки обязательных полей клиента.
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
)

// NotFoundError возвращается точечными выборками по идентификатору, когда строки нет.
type NotFoundError struct {
	Message string
}

// NewNotFoundError форматирует сообщение об отсутствующей записи.
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.Message }

// Status возвращает HTTP-эквивалент ошибки.
func (e *NotFoundError) Status() int { return http.StatusNotFound }

// Is позволяет сравнивать любую NotFoundError с ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// BadRequestError оборачивает нарушенный инвариант сущности.
type BadRequestError struct {
	Err error
}

// NewBadRequestError оборачивает err в BadRequestError.
func NewBadRequestError(err error) *BadRequestError {
	return &BadRequestError{Err: err}
}

func (e *BadRequestError) Error() string {
	if e.Err == nil {
		return ErrBadRequest.Error()
	}
	return e.Err.Error()
}

func (e *BadRequestError) Unwrap() error { return e.Err }

// Status возвращает HTTP-эквивалент ошибки.
func (e *BadRequestError) Status() int { return http.StatusBadRequest }

// Is позволяет сравнивать любую BadRequestError с ErrBadRequest.
func (e *BadRequestError) Is(target error) bool { return target == ErrBadRequest }

// IsNotFound проверяет, что ошибка означает отсутствие записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadRequest проверяет, что ошибка означает нарушение инварианта.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// StatusCode сопоставляет ошибку HTTP-статусу для внешних слоёв.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsBadRequest(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
