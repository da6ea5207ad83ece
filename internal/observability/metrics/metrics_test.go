package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveIntake("ok")
	m.ObserveCancel("not_found")
	m.ObserveReminder("sent")
	m.ObserveSweepRun("ok")
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveIntake("ok")
	m.ObserveCancel("ok")
	m.ObserveReminder("failed")
	m.ObserveSweepRun("empty")
}
