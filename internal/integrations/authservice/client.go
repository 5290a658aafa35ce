package authservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с AuthService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AuthService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser получает пользователя по идентификатору
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &user, nil
}

// CheckReservationAccess проверяет, что пользователь может управлять бронями.
// При недоступности AuthService доступ НЕ выдается: для изменяющих операций
// деградация закрытая.
func (c *Client) CheckReservationAccess(ctx context.Context, userID int64) (*User, error) {
	user, err := c.GetUser(ctx, userID)
	if err != nil {
		if err == ErrUserNotFound {
			c.log.Warn("AuthService: user id=%d not found", userID)
			return nil, err
		}
		c.log.Error("AuthService unavailable, denying access for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceUnavailable, userID, err)
	}

	if !user.CanManageReservations() {
		c.log.Warn("AuthService: user id=%d (role=%s, active=%t) has no reservation access",
			user.ID, user.Role, user.IsActive)
		return nil, ErrAccessDenied
	}

	return user, nil
}

// CheckFleetAccess проверяет, что пользователь может менять статусы гидроциклов
func (c *Client) CheckFleetAccess(ctx context.Context, userID int64) (*User, error) {
	user, err := c.GetUser(ctx, userID)
	if err != nil {
		if err == ErrUserNotFound {
			c.log.Warn("AuthService: user id=%d not found", userID)
			return nil, err
		}
		c.log.Error("AuthService unavailable, denying access for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceUnavailable, userID, err)
	}

	if !user.CanManageFleet() {
		c.log.Warn("AuthService: user id=%d (role=%s, active=%t) has no fleet access",
			user.ID, user.Role, user.IsActive)
		return nil, ErrAccessDenied
	}

	return user, nil
}
