package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_cache_hits_total",
			Help: "Total number of Redis cache hits",
		},
	)
	CacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_cache_misses_total",
			Help: "Total number of Redis cache misses",
		},
	)
	RedisOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	RedisErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_errors_total",
			Help: "Total number of Redis errors",
		},
		[]string{"operation"},
	)
	MongoOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "MongoDB operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)
	MongoErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_errors_total",
			Help: "Total number of MongoDB errors",
		},
		[]string{"operation", "collection"},
	)
	ImportedRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csv_imported_rows_total",
			Help: "Total number of CSV rows processed by outcome",
		},
		[]string{"outcome"},
	)
)

func Init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(RedisOperationDuration)
	prometheus.MustRegister(RedisErrorsTotal)
	prometheus.MustRegister(MongoOperationDuration)
	prometheus.MustRegister(MongoErrorsTotal)
	prometheus.MustRegister(ImportedRowsTotal)
}
