package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taskClient/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource отдаёт текущий токен сессии, gateway его никогда не меняет
type TokenSource interface {
	Get() (string, bool)
}

// Client - единственная точка обмена с удалённым API.
// Ровно одна попытка на вызов, без ретраев; таймаут на каждый запрос.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	creds   TokenSource
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration, creds TokenSource) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("разбор base_url: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: parsed,
		http:    &http.Client{},
		creds:   creds,
		timeout: timeout,
	}, nil
}

// errorsEnvelope - форма ответа сервера при ошибке валидации
type errorsEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	requestID := uuid.New().String()
	start := time.Now()

	target := *c.baseURL
	target.Path = strings.TrimRight(target.Path, "/") + path
	if query != nil {
		target.RawQuery = query.Encode()
	}

	logger.Debug("Gateway: Запрос к API",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Code: CodeUnknown, Message: "сериализация запроса", Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), payload)
	if err != nil {
		return &APIError{Code: CodeUnknown, Message: "сборка запроса", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.creds.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		message := "сервер недоступен"
		if errors.Is(err, context.DeadlineExceeded) {
			message = "таймаут запроса"
		}
		logger.Warn("Gateway: Ошибка транспорта",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &APIError{Code: CodeTransport, Message: message, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Code: CodeTransport, Message: "чтение ответа", Status: resp.StatusCode, Err: err}
	}

	logLevel := zap.InfoLevel
	if resp.StatusCode >= 400 {
		logLevel = zap.WarnLevel
	}
	logger.Log(logLevel, "Gateway: Ответ API",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("ms", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{Code: CodeUnknown, Message: "разбор ответа", Status: resp.StatusCode, Err: err}
		}
		return nil
	}

	return c.classify(resp.StatusCode, data)
}

// classify превращает HTTP-статус ответа в типизированную ошибку
func (c *Client) classify(status int, data []byte) *APIError {
	var envelope errorsEnvelope
	_ = json.Unmarshal(data, &envelope)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &APIError{Code: CodeAuth, Message: "сессия недействительна", Status: status}

	case status == http.StatusNotFound:
		return &APIError{Code: CodeNotFound, Message: "ресурс не найден", Status: status}

	case (status == http.StatusUnprocessableEntity || status == http.StatusBadRequest) && len(envelope.Errors) > 0:
		return &APIError{
			Code:    CodeValidation,
			Message: "данные не прошли проверку",
			Fields:  envelope.Errors,
			Status:  status,
		}
	}

	message := envelope.Message
	if message == "" {
		message = "неизвестная ошибка сервера"
	}
	return &APIError{Code: CodeUnknown, Message: message, Status: status}
}
