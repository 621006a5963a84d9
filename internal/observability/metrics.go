package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warechat_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// StorageErrorRate counts database errors surfaced as storage failures,
	// by table. Not-found and unique-violation outcomes are excluded; those
	// are expected results, not failures.
	StorageErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warechat_storage_error_rate_total",
		Help: "Total number of storage errors by table",
	}, []string{"table"})

	// CacheHitRate counts cache-aside lookups by key prefix and outcome.
	CacheHitRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warechat_cache_lookups_total",
		Help: "Total cache-aside lookups by key prefix and outcome",
	}, []string{"prefix", "outcome"})
)
