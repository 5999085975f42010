package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/customer-search/internal/apperr"
	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/validation"
	"golang.org/x/net/publicsuffix"
)

const DefaultTimeout = 30 * time.Second

// StatusError is returned when the customers endpoint answers with an
// unexpected status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("customers api status %d: %s", e.Code, e.Body)
}

// Customers talks to the customers endpoint of one origin.
// It satisfies search.Fetcher.
type Customers struct {
	baseURL string
	client  *http.Client
}

type Option func(*Customers)

func WithHTTPClient(c *http.Client) Option {
	return func(cs *Customers) {
		cs.client = c
	}
}

// NewCustomers builds a client for baseURL. Cookies set by the server are
// kept in a jar and only sent back to the same site.
func NewCustomers(baseURL string, opts ...Option) (*Customers, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid customers api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid customers api url %q: scheme and host are required", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	cs := &Customers{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout, Jar: jar},
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs, nil
}

// Fetch requests GET {base}/customers{query}. The query is appended as is.
func (cs *Customers) Fetch(ctx context.Context, query string) ([]domain.Customer, error) {
	body, err := cs.do(ctx, http.MethodGet, "/customers"+escapeQuery(query), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var customers []domain.Customer
	if err := json.Unmarshal(body, &customers); err != nil {
		return nil, fmt.Errorf("customers api parse response: %w", err)
	}
	if customers == nil {
		customers = make([]domain.Customer, 0)
	}
	return customers, nil
}

// Create posts c and returns the customer as stored by the server.
// Rejected fields come back as *apperr.FieldError.
func (cs *Customers) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("customers api encode request: %w", err)
	}

	body, err := cs.do(ctx, http.MethodPost, "/customers", bytes.NewReader(payload), http.StatusCreated)
	if err != nil {
		return domain.Customer{}, err
	}

	var saved domain.Customer
	if err := json.Unmarshal(body, &saved); err != nil {
		return domain.Customer{}, fmt.Errorf("customers api parse response: %w", err)
	}
	return saved, nil
}

func (cs *Customers) do(ctx context.Context, method, path string, payload io.Reader, want int) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, cs.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("customers api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := cs.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("customers api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("customers api read response: %w", err)
	}

	if resp.StatusCode == want {
		return body, nil
	}
	if resp.StatusCode == http.StatusUnprocessableEntity {
		if fe := parseFieldError(body); fe != nil {
			return nil, fe
		}
	}
	return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

const upperhex = "0123456789ABCDEF"

// escapeQuery percent-encodes the bytes a browser's URL parser encodes in a
// query: controls, space, '"', '<', '>' and non-ASCII. Existing escapes and
// the '&', '=' separators are left alone.
func escapeQuery(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c <= 0x20 || c >= 0x7f || c == '"' || c == '<' || c == '>' {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func parseFieldError(body []byte) *apperr.FieldError {
	var resp struct {
		Error  string            `json:"error"`
		Fields validation.Errors `json:"fields"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Fields) == 0 {
		return nil
	}
	return apperr.NewFieldError(resp.Error, resp.Fields)
}
