package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_upstream_requests_total",
		Help: "Total upstream REST requests by operation",
	}, []string{"op"})
	UpstreamFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_upstream_fail_total",
		Help: "Total upstream REST failures (transport, status or decode) by operation",
	}, []string{"op"})
	UpstreamDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "explorer_upstream_duration_ms",
		Help:    "Upstream REST call duration in milliseconds",
		Buckets: []float64{10, 25, 50, 100, 200, 500, 1000, 2000, 5000},
	}, []string{"op"})
	SelectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "explorer_selections_total",
		Help: "Total region selections",
	})
	SubRegionFetchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "explorer_subregion_fetch_total",
		Help: "Total sub-region detail fetches triggered by expansion",
	})
	StaleResponsesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_stale_responses_total",
		Help: "Responses discarded because a newer selection superseded them",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamFailTotal)
	prometheus.MustRegister(UpstreamDurationMs)
	prometheus.MustRegister(SelectionsTotal)
	prometheus.MustRegister(SubRegionFetchTotal)
	prometheus.MustRegister(StaleResponsesTotal)
}

// 文档注释：返回 Prometheus 指标监听器
// 背景：配置 METRICS_ADDR 时在独立端口挂载 /metrics；未配置则不监听。
func Handler() http.Handler { return promhttp.Handler() }
