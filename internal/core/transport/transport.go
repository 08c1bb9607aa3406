// Package transport issues credentialed JSON requests against the backend and
// normalizes every response into a payload-or-APIError pair.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"

	"fridgechef/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError mirrors the backend error body. Extra fields such as the checkout
// URL are preserved so callers can classify business errors without
// re-inspecting raw JSON.
type APIError struct {
	Status      int
	Message     string
	Detail      string
	CheckoutURL string
	Raw         json.RawMessage
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody is the recognized backend error shape.
type errorBody struct {
	Error       string `json:"error"`
	Message     string `json:"message"`
	CheckoutURL string `json:"checkout_url"`
}

// Client is a thin request function over resty. The cookie jar carries the
// session credential across calls; there is deliberately no retry and no
// client-side timeout.
type Client struct {
	http *resty.Client
}

// New creates a transport client rooted at baseURL.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// Call performs one JSON request. On a non-2xx status the parsed error body is
// returned as an *APIError; an unparsable error body is synthesized from the
// status text. A 2xx response with an unparsable or empty body yields a nil
// payload and nil error: success with no body is valid.
func (c *Client) Call(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	requestID := common.NewRequestID()

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		common.LogError("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &APIError{Message: err.Error()}
	}

	common.LogDebug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.String("request_id", requestID),
	)

	if resp.IsError() {
		return nil, parseError(resp)
	}

	payload := resp.Body()
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, nil
	}
	return json.RawMessage(payload), nil
}

func parseError(resp *resty.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}

	var parsed errorBody
	if err := common.ParseJSONBytes(resp.Body(), &parsed); err != nil || parsed.Error == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
		if apiErr.Message == "" {
			apiErr.Message = "Request failed"
		}
		return apiErr
	}

	apiErr.Message = parsed.Error
	apiErr.Detail = parsed.Message
	apiErr.CheckoutURL = parsed.CheckoutURL
	apiErr.Raw = json.RawMessage(resp.Body())
	return apiErr
}
