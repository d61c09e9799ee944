// Package quoteclient is a small Go client for the quotes HTTP API.
package quoteclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Quote struct {
	Id          int     `json:"id"`
	Text        string  `json:"text"`
	Original    string  `json:"original"`
	Source      string  `json:"source"`
	Category    string  `json:"category"`
	Explanation string  `json:"explanation"`
	Status      *string `json:"status,omitempty"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Code       string `json:"error"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("quotes api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("quotes api: %d %s", e.StatusCode, e.Code)
}

type Client struct {
	http *resty.Client
}

type Option func(*resty.Client)

func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// New builds a client rooted at the API base, e.g. "http://localhost:3000/api".
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetError(&APIError{}).
		SetTimeout(10 * time.Second)
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

// Search lists quotes filtered by category and free-text query; empty values
// are not sent.
func (c *Client) Search(ctx context.Context, category, query string) ([]Quote, error) {
	var quotes []Quote
	req := c.http.R().SetContext(ctx).SetResult(&quotes)
	if category != "" {
		req.SetQueryParam("category", category)
	}
	if query != "" {
		req.SetQueryParam("query", query)
	}

	res, err := req.Get("/quotes")
	if err := check(res, err); err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []Quote{}
	}
	return quotes, nil
}

func (c *Client) List(ctx context.Context) ([]Quote, error) {
	return c.Search(ctx, "", "")
}

// SearchById uses the id form of the list endpoint, which answers with a
// single quote and ignores every other filter.
func (c *Client) SearchById(ctx context.Context, id int) (*Quote, error) {
	var quote Quote
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&quote).
		SetQueryParam("id", strconv.Itoa(id)).
		Get("/quotes")
	if err := check(res, err); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) Get(ctx context.Context, id int) (*Quote, error) {
	var quote Quote
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&quote).
		SetPathParam("id", strconv.Itoa(id)).
		Get("/quotes/{id}")
	if err := check(res, err); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) Random(ctx context.Context) (*Quote, error) {
	var quote Quote
	res, err := c.http.R().SetContext(ctx).SetResult(&quote).Get("/quotes/random")
	if err := check(res, err); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	res, err := c.http.R().SetContext(ctx).SetResult(&categories).Get("/quotes/categories")
	if err := check(res, err); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func check(res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("client.R > %w", err)
	}
	if res.IsSuccess() {
		return nil
	}

	apiErr := &APIError{StatusCode: res.StatusCode()}
	if e, ok := res.Error().(*APIError); ok && e.Code != "" {
		apiErr.Code = e.Code
		apiErr.Message = e.Message
	} else {
		apiErr.Code = http.StatusText(res.StatusCode())
	}
	return apiErr
}
