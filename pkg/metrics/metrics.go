package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "backoffice", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "backoffice", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	KVFallback = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "backoffice", Name: "kv_fallback_total", Help: "Storage operations served by the local fallback store."},
		[]string{"op"},
	)
	KVErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "backoffice", Name: "kv_errors_total", Help: "Storage operations that failed on every backend."},
		[]string{"op"},
	)
	RepositoryWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "backoffice", Name: "repository_writes_total", Help: "Whole-collection writes by collection and operation."},
		[]string{"collection", "op"},
	)
	AccessDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "backoffice", Name: "access_denied_total", Help: "Module requests rejected by the role table."},
		[]string{"module"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(KVFallback)
	reg.MustRegister(KVErrors)
	reg.MustRegister(RepositoryWrites)
	reg.MustRegister(AccessDenied)
}
