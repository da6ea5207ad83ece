package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking lifecycle flows.
type BookingMetrics struct {
	intakeTotal   *prometheus.CounterVec
	cancelTotal   *prometheus.CounterVec
	reminderTotal *prometheus.CounterVec
	sweepRunTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		intakeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heartsafe",
			Subsystem: "booking",
			Name:      "intake_total",
			Help:      "Total booking intake requests",
		}, []string{"status"}),
		cancelTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heartsafe",
			Subsystem: "booking",
			Name:      "cancel_total",
			Help:      "Total booking cancellation requests",
		}, []string{"status"}),
		reminderTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heartsafe",
			Subsystem: "booking",
			Name:      "reminders_total",
			Help:      "Total reminder emails attempted by the sweep",
		}, []string{"status"}),
		sweepRunTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heartsafe",
			Subsystem: "booking",
			Name:      "sweep_runs_total",
			Help:      "Total reminder sweep invocations",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intakeTotal, m.cancelTotal, m.reminderTotal, m.sweepRunTotal)
	return m
}

func (m *BookingMetrics) ObserveIntake(status string) {
	if m == nil {
		return
	}
	m.intakeTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveCancel(status string) {
	if m == nil {
		return
	}
	m.cancelTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveReminder(status string) {
	if m == nil {
		return
	}
	m.reminderTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveSweepRun(outcome string) {
	if m == nil {
		return
	}
	m.sweepRunTotal.WithLabelValues(outcome).Inc()
}
