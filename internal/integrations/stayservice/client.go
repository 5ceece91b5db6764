package stayservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StayService — авторитетным бэкендом,
// владеющим объектами, пользователями и бронированиями.
// Таймаут обязателен: без него неудачная мутация подвешивала бы
// интерфейс на неопределённый срок.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StayService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProperty получает объект размещения вместе со списком его бронирований
func (c *Client) GetProperty(ctx context.Context, propertyID int64) (*Property, error) {
	url := fmt.Sprintf("%s/properties/%d", c.baseURL, propertyID)

	var property Property
	if err := c.doGet(ctx, url, &property, ErrPropertyNotFound); err != nil {
		return nil, err
	}

	return &property, nil
}

// GetUser получает пользователя с его собственными объектами и объектами,
// где у него есть бронирования
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)

	var user User
	if err := c.doGet(ctx, url, &user, ErrUserNotFound); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateBooking создает бронирование на бэкенде. Возвращает подтверждённую
// запись с присвоенным ID — только после этого локальные кэши можно обновлять
func (c *Client) CreateBooking(ctx context.Context, propertyID, userID int64, r domain.DateRange) (*Booking, error) {
	url := fmt.Sprintf("%s/bookings", c.baseURL)
	body := createBookingRequest{
		PropertyID: propertyID,
		UserID:     userID,
		StartDate:  r.StartISO(),
		EndDate:    r.EndISO(),
	}

	var booking Booking
	if err := c.doMutate(ctx, http.MethodPost, url, body, &booking, ErrPropertyNotFound); err != nil {
		return nil, err
	}

	return &booking, nil
}

// UpdateBooking заменяет диапазон дат бронирования, ID остаётся прежним
func (c *Client) UpdateBooking(ctx context.Context, bookingID int64, r domain.DateRange) (*Booking, error) {
	url := fmt.Sprintf("%s/bookings/%d", c.baseURL, bookingID)
	body := updateBookingRequest{
		StartDate: r.StartISO(),
		EndDate:   r.EndISO(),
	}

	var booking Booking
	if err := c.doMutate(ctx, http.MethodPut, url, body, &booking, ErrBookingNotFound); err != nil {
		return nil, err
	}

	return &booking, nil
}

// DeleteBooking удаляет бронирование на бэкенде
func (c *Client) DeleteBooking(ctx context.Context, bookingID int64) error {
	url := fmt.Sprintf("%s/bookings/%d", c.baseURL, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("StayService unreachable: DELETE %s: %v", url, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrBookingNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status code %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// doGet выполняет GET запрос и декодирует ответ
func (c *Client) doGet(ctx context.Context, url string, out interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("StayService unreachable: GET %s: %v", url, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status code %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// doMutate выполняет мутирующий запрос (POST/PUT) с JSON телом.
// Статус 409 от бэкенда означает, что локально прошедшая валидация устарела:
// другой клиент успел занять пересекающиеся даты
func (c *Client) doMutate(ctx context.Context, method, url string, body interface{}, out interface{}, notFound error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("StayService unreachable: %s %s: %v", method, url, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode == http.StatusConflict:
		return ErrConflictRejected
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status code %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
