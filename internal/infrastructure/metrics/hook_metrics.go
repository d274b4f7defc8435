package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

const namespace = "crm_sync"

// HookMetrics contadores de ejecución de los hooks, sobre un registry propio.
type HookMetrics struct {
	registry    *prometheus.Registry
	hookRuns    *prometheus.CounterVec
	rollups     *prometheus.CounterVec
	finTranSent *prometheus.CounterVec
}

// NewHookMetrics registra los colectores. Incluye los de runtime de Go y del proceso.
func NewHookMetrics() *HookMetrics {
	reg := prometheus.NewRegistry()
	m := &HookMetrics{
		registry: reg,
		hookRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hook_runs_total",
			Help:      "Ejecuciones de hook por tipo de registro y resultado.",
		}, []string{"hook", "record_type", "outcome"}),
		rollups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customer_rollups_total",
			Help:      "Recalculos de rollups de cliente, separados por si reescribieron valores.",
		}, []string{"changed"}),
		finTranSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fin_tran_enqueued_total",
			Help:      "Transacciones financieras encoladas hacia el CRM.",
		}, []string{"record_type"}),
	}
	reg.MustRegister(
		m.hookRuns, m.rollups, m.finTranSent,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveHook cuenta una ejecución de hook.
func (m *HookMetrics) ObserveHook(hook string, recordType entity.RecordType, outcome string) {
	m.hookRuns.WithLabelValues(hook, string(recordType), outcome).Inc()
}

// ObserveRollup cuenta un recálculo de rollups.
func (m *HookMetrics) ObserveRollup(changed bool) {
	m.rollups.WithLabelValues(strconv.FormatBool(changed)).Inc()
}

// ObserveFinTran cuenta una transacción encolada.
func (m *HookMetrics) ObserveFinTran(recordType entity.RecordType) {
	m.finTranSent.WithLabelValues(string(recordType)).Inc()
}

// Handler expone el registry en formato Prometheus.
func (m *HookMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry permite registrar colectores adicionales.
func (m *HookMetrics) Registry() *prometheus.Registry {
	return m.registry
}
