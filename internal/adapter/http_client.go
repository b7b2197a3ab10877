package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/utils"
	"github.com/avoronov/go-library-api/models"
)

type httpLibraryClient struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPLibraryClient constructs an HTTP/REST implementation of
// [LibraryClient]. It normalizes and validates the base URL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPLibraryClient(address string, timeout time.Duration, log *logger.Logger) (LibraryClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpLibraryClient{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func (c *httpLibraryClient) SetToken(token string) {
	c.token = token
}

func (c *httpLibraryClient) Token() string {
	return c.token
}

func (c *httpLibraryClient) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var loginResp models.LoginResponse
	if err := json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	c.SetToken(loginResp.Token)
	c.logger.Info().Str("email", loginResp.Email).Str("role", string(loginResp.Role)).Msg("logged in")
	return loginResp, nil
}

func (c *httpLibraryClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal(resp.Body(), &books); err != nil {
		return nil, fmt.Errorf("decode book list: %w", err)
	}
	return books, nil
}

func (c *httpLibraryClient) GetBook(ctx context.Context, id int64) (models.Book, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/books/%d", id))
	if err != nil {
		return models.Book{}, fmt.Errorf("get book request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	var book models.Book
	if err := json.Unmarshal(resp.Body(), &book); err != nil {
		return models.Book{}, fmt.Errorf("decode book: %w", err)
	}
	return book, nil
}

func (c *httpLibraryClient) CreateBook(ctx context.Context, title, author string) (models.Book, error) {
	resp, err := c.authorized().
		SetContext(ctx).
		SetBody(models.CreateBookRequest{Title: title, Author: author}).
		Post("/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	var book models.Book
	if err := json.Unmarshal(resp.Body(), &book); err != nil {
		return models.Book{}, fmt.Errorf("decode created book: %w", err)
	}
	return book, nil
}

func (c *httpLibraryClient) DeleteBook(ctx context.Context, id int64) error {
	resp, err := c.authorized().
		SetContext(ctx).
		Delete(fmt.Sprintf("/books/%d", id))
	if err != nil {
		return fmt.Errorf("delete book request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpLibraryClient) CheckoutBook(ctx context.Context, id int64) (string, error) {
	return c.circulation(ctx, id, "checkout")
}

func (c *httpLibraryClient) CheckinBook(ctx context.Context, id int64) (string, error) {
	return c.circulation(ctx, id, "checkin")
}

func (c *httpLibraryClient) circulation(ctx context.Context, id int64, action string) (string, error) {
	resp, err := c.authorized().
		SetContext(ctx).
		Post(fmt.Sprintf("/books/%d/%s", id, action))
	if err != nil {
		return "", fmt.Errorf("%s request: %w", action, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	var msg models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &msg); err != nil {
		return "", fmt.Errorf("decode %s response: %w", action, err)
	}
	return msg.Message, nil
}

// authorized returns a request carrying the stored bearer token, if any.
func (c *httpLibraryClient) authorized() *resty.Request {
	req := c.client.R()
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	return req
}
