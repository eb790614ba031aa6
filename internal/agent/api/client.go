// Package api содержит HTTP-клиент fleetctl для API сервера fleet identity.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/");
//   - всегда добавляется Accept: application/json, Content-Type — только при наличии тела;
//   - 204 No Content и пустое тело считаются успехом;
//   - ответы не 2xx превращаются в *Error: тело ошибки сервера разбирается
//     (code/message/errors или error/error_description для token endpoint),
//     если разобрать не удалось — в Message попадает текст тела или res.Status.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Client — HTTP-клиент fleetctl.
type Client struct {
	baseURL string
	http    *http.Client
}

// Options — настройки клиента.
type Options struct {
	Timeout time.Duration
	// Insecure отключает проверку TLS сертификата. Только для локальной разработки.
	Insecure bool
}

// NewClient создаёт клиент для сервера baseURL (например "https://127.0.0.1:8080").
func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Insecure {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // только для dev
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: tr,
		},
	}
}

// Error — ответ сервера с кодом не 2xx.
type Error struct {
	Status  int
	Code    string
	Message string
	Errors  map[string][]string
}

func (e *Error) Error() string {
	var b strings.Builder
	switch {
	case e.Code != "" && e.Message != "":
		fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	case e.Code != "":
		b.WriteString(e.Code)
	default:
		b.WriteString(e.Message)
	}

	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", f, strings.Join(e.Errors[f], "; "))
	}
	return b.String()
}

// IsStatus сообщает, что err — ответ сервера с указанным статусом.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

// readAPIError разбирает тело ошибки сервера.
func readAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	e := &Error{Status: res.StatusCode}

	var body sm.ErrorResponse
	if json.Unmarshal(raw, &body) == nil && body.Code != "" {
		e.Code, e.Message, e.Errors = body.Code, body.Message, body.Errors
		return e
	}
	var tokenErr sm.TokenErrorResponse
	if json.Unmarshal(raw, &tokenErr) == nil && tokenErr.Error != "" {
		e.Code, e.Message = tokenErr.Error, tokenErr.ErrorDescription
		return e
	}

	e.Message = strings.TrimSpace(string(raw))
	if e.Message == "" {
		e.Message = res.Status
	}
	return e
}

// decodeJSONOrOK декодирует JSON из r в resp; пустое тело (io.EOF) не ошибка.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do отправляет запрос и декодирует ответ в resp (если resp != nil).
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, resp any, token string) error {
	r, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIError(res)
	}
	if res.StatusCode == http.StatusNoContent {
		return nil
	}
	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON — POST с JSON телом req. req == nil — запрос без тела.
func (c *Client) PostJSON(ctx context.Context, path string, req, resp any, token string) error {
	return c.sendJSON(ctx, http.MethodPost, path, req, resp, token)
}

// PutJSON — PUT с JSON телом req.
func (c *Client) PutJSON(ctx context.Context, path string, req, resp any, token string) error {
	return c.sendJSON(ctx, http.MethodPut, path, req, resp, token)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, req, resp any, token string) error {
	if req == nil {
		return c.do(ctx, method, path, nil, "", resp, token)
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return err
	}
	return c.do(ctx, method, path, &buf, "application/json", resp, token)
}

// PostForm — POST application/x-www-form-urlencoded (token endpoint).
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, resp any) error {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", resp, "")
}

// GetJSON — GET с query-параметрами q (может быть nil).
func (c *Client) GetJSON(ctx context.Context, path string, q url.Values, resp any, token string) error {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, "", resp, token)
}

// Delete — DELETE без тела.
func (c *Client) Delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, token)
}
