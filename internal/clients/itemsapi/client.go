package itemsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/logger"
)

const (
	itemsPath = "/items"

	// keeps error messages readable when a proxy answers with a whole page
	maxErrorBody = 512
)

type config interface {
	BaseURL() string
	RequestTimeout() time.Duration
}

// Client talks to the REST backend that owns expense records.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(config config) *Client {
	return &Client{
		baseURL: strings.TrimRight(config.BaseURL(), "/"),
		http:    &http.Client{Timeout: config.RequestTimeout()},
	}
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (c *Client) GetAll(ctx context.Context) ([]expense.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+itemsPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	req.Header.Set("Accept", "application/json")

	var records []expense.Record
	if err = c.do(req, &records); err != nil {
		return nil, errors.Wrap(err, "get items")
	}
	if records == nil {
		records = make([]expense.Record, 0)
	}
	return records, nil
}

func (c *Client) Create(ctx context.Context, draft expense.Draft) (expense.Record, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "marshalling draft")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+itemsPath, bytes.NewReader(body))
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var rec expense.Record
	if err = c.do(req, &rec); err != nil {
		return expense.Record{}, errors.Wrap(err, "add item")
	}
	if rec.ID == "" {
		return expense.Record{}, errors.New("add item: backend returned no id")
	}
	return rec, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	span, _ := opentracing.StartSpanFromContext(req.Context(), "itemsapi "+req.Method)
	defer span.Finish()
	ext.SpanKindRPCClient.Set(span)
	ext.HTTPMethod.Set(span, req.Method)
	ext.HTTPUrl.Set(span, req.URL.String())
	err := span.Tracer().Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
	if err != nil {
		logger.Debug("cannot propagate trace", zap.Error(err))
	}

	res, err := c.http.Do(req)
	if err != nil {
		ext.Error.Set(span, true)
		return err
	}
	ext.HTTPStatusCode.Set(span, uint16(res.StatusCode))
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}
	logger.Debug("response from items api",
		zap.String("method", req.Method),
		zap.Int("status", res.StatusCode),
		zap.Int("bytes", len(body)),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{Code: res.StatusCode, Body: string(body)}
	}

	if err = json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "unmarshalling response")
	}
	return nil
}
