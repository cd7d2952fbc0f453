// Package upstream 调用平台 REST 后端。所有响应都是 {code, message, data} 信封。
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cyberedu_admin/internal/config"
	"cyberedu_admin/internal/session"
	"cyberedu_admin/pkg/logger"
	"cyberedu_admin/pkg/monitoring"
	"cyberedu_admin/pkg/tracing"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// Code 后端的 code 字段有时是字符串 "200"，有时是数字
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Code(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Code(n.String())
	return nil
}

func (c Code) OK() bool {
	return c == "200" || c == "201"
}

// Envelope 后端响应信封
type Envelope struct {
	Code    Code            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError 后端返回失败或 HTTP 错误
type APIError struct {
	Status  int
	Code    Code
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error (status %d, code %s): %s", e.Status, e.Code, e.Message)
}

// HTTPStatus 4xx 原样返回，其余视为网关错误
func (e *APIError) HTTPStatus() int {
	if e.Status >= 400 && e.Status < 500 {
		return e.Status
	}
	if code, err := strconv.Atoi(string(e.Code)); err == nil && code >= 400 && code < 500 {
		return code
	}
	return http.StatusBadGateway
}

// TransportError 后端不可达或请求未完成
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse upstream base url")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// call 描述一次后端调用
type call struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	token       string
	fallback    string
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do 发送请求并解析信封，out 为 nil 时忽略 data
func (c *Client) do(ctx context.Context, cl call, out interface{}) (*Envelope, error) {
	ctx, span := tracing.Tracer.Start(ctx, "upstream."+cl.op)
	defer span.End()
	span.SetAttributes(attribute.String("http.method", cl.method), attribute.String("upstream.path", cl.path))

	env, err := c.send(ctx, cl, out)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.SetStatus(codes.Error, err.Error())
		logger.Log.Warn("upstream call failed", zap.String("op", cl.op), zap.Error(err))
	}
	monitoring.UpstreamRequests.WithLabelValues(cl.op, outcome).Inc()
	return env, err
}

func (c *Client) send(ctx context.Context, cl call, out interface{}) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, cl.method, c.endpoint(cl.path, cl.query), cl.body)
	if err != nil {
		if closer, ok := cl.body.(io.Closer); ok {
			closer.Close()
		}
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		contentType := cl.contentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	token := cl.token
	if token == "" {
		token = session.Token(ctx)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: cl.method + " " + cl.path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: cl.method + " " + cl.path, Err: errors.Wrap(err, "read response")}
	}

	var env Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 {
		msg := cl.fallback
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, &APIError{Status: resp.StatusCode, Code: env.Code, Message: msg}
	}
	if decodeErr != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: cl.fallback}
	}
	if !env.Code.OK() {
		msg := env.Message
		if msg == "" {
			msg = cl.fallback
		}
		return nil, &APIError{Status: resp.StatusCode, Code: env.Code, Message: msg}
	}

	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, errors.Wrapf(err, "decode %s data", cl.op)
		}
	}
	return &env, nil
}

func jsonBody(v interface{}) (io.Reader, error) {
	if v == nil {
		return nil, nil
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode request body")
	}
	return bytes.NewReader(buf), nil
}

// Result 透传后端提示信息与解码后的数据
type Result[T any] struct {
	Message string
	Data    T
}

func doJSON[T any](ctx context.Context, c *Client, cl call, payload interface{}) (*Result[T], error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	cl.body = body
	var data T
	env, err := c.do(ctx, cl, &data)
	if err != nil {
		return nil, err
	}
	return &Result[T]{Message: env.Message, Data: data}, nil
}
