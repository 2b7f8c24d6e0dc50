// Package obs exposes the diagnostic counters for the core. Storage is
// fail-soft by contract, so these counters are the only place a swallowed
// failure stays visible.
package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	storageFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitdesk_storage_failures_total",
			Help: "Key-value store operations degraded to a false/nil result.",
		},
		[]string{"op"},
	)

	recordOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitdesk_record_ops_total",
			Help: "Domain record operations by entity and operation.",
		},
		[]string{"entity", "op"},
	)

	auditDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "visitdesk_audit_entries_dropped_total",
			Help: "Audit entries removed by the retention cap.",
		},
	)

	registerOnce sync.Once
)

// Init registers the counters with the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(storageFailures, recordOps, auditDropped)
	})
}

// StorageFailure counts a fail-soft storage degradation for the given
// operation ("get", "set", "remove", "clear").
func StorageFailure(op string) {
	storageFailures.WithLabelValues(op).Inc()
}

// RecordOp counts a domain record operation ("create", "update", "delete").
func RecordOp(entity, op string) {
	recordOps.WithLabelValues(entity, op).Inc()
}

// AuditDropped counts entries trimmed from the audit log.
func AuditDropped(n int) {
	auditDropped.Add(float64(n))
}
