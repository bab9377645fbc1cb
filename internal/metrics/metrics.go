package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var (
	// API 请求计数器
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// API 请求响应时间
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// 转移的呼叫记录数
	callsTransferredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calls_transferred_total",
			Help: "Total number of call records transferred",
		},
		[]string{"product_type"},
	)

	// 呼叫记录更新数
	callUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "call_updates_total",
			Help: "Total number of call record updates",
		},
	)

	// 呼叫状态分布
	callsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "calls_by_status",
			Help: "Number of call records by status",
		},
		[]string{"status"},
	)

	// 数据库连接数
	databaseConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Number of active database connections",
		},
	)

	databaseConnectionsIdle = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

var (
	once sync.Once
)

func init() {
	// 注册指标
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(callsTransferredTotal)
	prometheus.MustRegister(callUpdatesTotal)
	prometheus.MustRegister(callsByStatus)
	prometheus.MustRegister(databaseConnectionsActive)
	prometheus.MustRegister(databaseConnectionsIdle)

	// 注册 Go 运行时指标（只注册一次）
	once.Do(func() {
		// 尝试注册 Go 运行时指标，如果已注册则忽略错误
		_ = prometheus.Register(prometheus.NewGoCollector())
		_ = prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	})
}

// Handler 返回 Prometheus 指标处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAPIRequest 记录 API 请求
func RecordAPIRequest(method, path string, status int, duration float64) {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = fmt.Sprintf("%d", status)
	}
	apiRequestsTotal.WithLabelValues(method, path, statusText).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordCallTransferred 记录呼叫转移
func RecordCallTransferred(productType string) {
	callsTransferredTotal.WithLabelValues(productType).Inc()
}

// RecordCallUpdated 记录呼叫记录更新
func RecordCallUpdated() {
	callUpdatesTotal.Inc()
}

// UpdateCallsByStatus 更新呼叫状态分布指标
func UpdateCallsByStatus(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := db.Table("calls").Select("status, count(*) as count").Group("status").Scan(&counts).Error; err != nil {
		return err
	}

	callsByStatus.Reset()
	for _, c := range counts {
		callsByStatus.WithLabelValues(c.Status).Set(float64(c.Count))
	}
	return nil
}

// UpdateDatabaseConnections 更新数据库连接数指标
func UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	stats := sqlDB.Stats()
	databaseConnectionsActive.Set(float64(stats.InUse))
	databaseConnectionsIdle.Set(float64(stats.Idle))
	return nil
}
