package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计 HTTP 接口的响应时间和调用次数
type MetricsBuilder struct {
	Namespace string
	Subsystem string
	// 不统计的路径，例如健康检查
	IgnorePaths []string
}

func NewMetricsBuilder(namespace, subsystem string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace: namespace,
		Subsystem: subsystem,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return b.BuildWith(prometheus.DefaultRegisterer)
}

// BuildWith 指定注册到哪个 Registerer，测试里面用独立的 registry
func (b *MetricsBuilder) BuildWith(reg prometheus.Registerer) gin.HandlerFunc {
	labels := []string{"method", "path", "status_code"}
	summaryVec := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
	reg.MustRegister(summaryVec, counterVec)

	ignored := make(map[string]struct{}, len(b.IgnorePaths))
	for _, p := range b.IgnorePaths {
		ignored[p] = struct{}{}
	}
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上路由的，统一归类，避免 label 爆炸
			path = "unknown"
		}
		if _, ok := ignored[path]; ok {
			return
		}
		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())
		summaryVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
