// 包 logger：上游 HTTP 访问日志，统一记录出站请求的关键维度（方法、路径、状态、耗时、字节数）
package logger

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// countingBody：包装响应体以统计读出字节数，并在关闭时输出访问日志
// 背景：RoundTrip 返回时响应体尚未读取，字节数与总耗时只能在 Close 时确定
type countingBody struct {
	io.ReadCloser
	l      *slog.Logger
	req    *http.Request
	status int
	start  time.Time
	bytes  int64
	closed bool
}

// Read：累加读出字节数并透传
func (b *countingBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.bytes += int64(n)
	return n, err
}

// Close：关闭响应体并记录一次访问日志；重复关闭不重复记录
func (b *countingBody) Close() error {
	err := b.ReadCloser.Close()
	if !b.closed {
		b.closed = true
		b.l.Debug("upstream_access",
			"method", b.req.Method,
			"path", b.req.URL.Path,
			"status", b.status,
			"bytes", b.bytes,
			"duration_ms", time.Since(b.start).Milliseconds(),
		)
	}
	return err
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Transport：生成带访问日志的 RoundTripper
// 约束：不读取请求体；传输层错误立即记录，成功响应在响应体关闭时记录
func Transport(l *slog.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(r)
		if err != nil {
			l.Debug("upstream_access_error",
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
				"err", err,
			)
			return nil, err
		}
		resp.Body = &countingBody{ReadCloser: resp.Body, l: l, req: r, status: resp.StatusCode, start: start}
		return resp, nil
	})
}
