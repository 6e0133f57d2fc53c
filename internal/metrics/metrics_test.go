package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequestIncrementsCounter(t *testing.T) {
	RecordRequest("device", "device-get", "ok", 10*time.Millisecond)

	m := &dto.Metric{}
	metric, err := requests.GetMetricWithLabelValues("device", "device-get", "ok")
	if err != nil {
		t.Fatalf("get metric: %v", err)
	}
	if err := metric.Write(m); err != nil {
		t.Fatalf("write: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Fatalf("expected counter >= 1, got %v", m.Counter.GetValue())
	}
}

func TestRecordNotificationIncrementsByKind(t *testing.T) {
	RecordNotification("[PIN_CHANGE]")

	m := &dto.Metric{}
	metric, err := notifications.GetMetricWithLabelValues("[PIN_CHANGE]")
	if err != nil {
		t.Fatalf("get metric: %v", err)
	}
	if err := metric.Write(m); err != nil {
		t.Fatalf("write: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Fatalf("expected counter >= 1, got %v", m.Counter.GetValue())
	}
}
