// 包 apicolombia：api-colombia 公共 REST 接口客户端，实现 explorer.Source
package apicolombia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"region-explorer/internal/explorer"
	"region-explorer/internal/logger"
	"region-explorer/internal/metrics"
)

const DefaultBaseURL = "https://api-colombia.com/api/v1"

// StatusError：上游返回非 2xx 状态
type StatusError struct {
	Op     string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.Path, e.Status)
}

// Client：上游接口客户端
// 约束：不做缓存、重试与限流；每次调用恰好一个 HTTP 请求
type Client struct {
	base string
	http *http.Client
}

var _ explorer.Source = (*Client)(nil)

// New：base 为空时使用 DefaultBaseURL；hc 为空时使用 8s 超时的默认客户端
func New(base string, hc *http.Client) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: 8 * time.Second}
	}
	return &Client{base: strings.TrimRight(base, "/"), http: hc}
}

// Departments：GET {base}/Department
func (c *Client) Departments(ctx context.Context) ([]explorer.Region, error) {
	var out []explorer.Region
	if err := c.get(ctx, "departments", "/Department", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Department：GET {base}/Department/{id}
func (c *Client) Department(ctx context.Context, id int) (explorer.Region, error) {
	var out explorer.Region
	if err := c.get(ctx, "department", "/Department/"+strconv.Itoa(id), &out); err != nil {
		return explorer.Region{}, err
	}
	return out, nil
}

// DepartmentCities：GET {base}/Department/{id}/cities
func (c *Client) DepartmentCities(ctx context.Context, id int) ([]explorer.SubRegion, error) {
	var out []explorer.SubRegion
	if err := c.get(ctx, "department_cities", "/Department/"+strconv.Itoa(id)+"/cities", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// City：GET {base}/City/{id}
func (c *Client) City(ctx context.Context, id int) (explorer.SubRegionDetail, error) {
	var out explorer.SubRegionDetail
	if err := c.get(ctx, "city", "/City/"+strconv.Itoa(id), &out); err != nil {
		return explorer.SubRegionDetail{}, err
	}
	return out, nil
}

// 文档注释：执行一次 GET 并解码 JSON
// 约束：传输错误、非 2xx 与解码失败均计为失败并返回错误，调用方不区分原因；多余字段忽略。
func (c *Client) get(ctx context.Context, op, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
	req.Header.Set("accept", "application/json")

	t0 := time.Now()
	metrics.UpstreamRequestsTotal.WithLabelValues(op).Inc()
	logger.L().Debug("upstream_req", "op", op, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.L().Error("upstream_http_error", "op", op, "path", path, "err", err)
		metrics.UpstreamFailTotal.WithLabelValues(op).Inc()
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.L().Error("upstream_status_error", "op", op, "path", path, "status", resp.StatusCode)
		metrics.UpstreamFailTotal.WithLabelValues(op).Inc()
		return &StatusError{Op: op, Path: path, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		logger.L().Error("upstream_decode_error", "op", op, "path", path, "err", err)
		metrics.UpstreamFailTotal.WithLabelValues(op).Inc()
		return fmt.Errorf("%s %s: decode: %w", op, path, err)
	}
	dur := time.Since(t0).Milliseconds()
	metrics.UpstreamDurationMs.WithLabelValues(op).Observe(float64(dur))
	logger.L().Debug("upstream_resp", "op", op, "path", path, "status", resp.StatusCode, "duration_ms", dur)
	return nil
}
