package logger

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("cache.hit")
	m.IncrCounter("cache.hit")
	m.IncrCounter("cache.hit")

	if got := m.Snapshot().Counters["cache.hit"]; got != 3 {
		t.Errorf("Counter = %v, want 3", got)
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("table.rows", 512)
	m.SetGauge("table.rows", 539)

	if got := m.Snapshot().Gauges["table.rows"]; got != 539 {
		t.Errorf("Gauge = %v, want 539", got)
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("fetch.duration", 150*time.Millisecond)
	m.RecordTiming("fetch.duration", 100*time.Millisecond)
	m.RecordTiming("fetch.duration", 200*time.Millisecond)

	fetch := m.Snapshot().Timings["fetch.duration"]
	if fetch.Count != 3 {
		t.Errorf("Count = %d, want 3", fetch.Count)
	}
	if fetch.Min != 100*time.Millisecond {
		t.Errorf("Min = %v, want 100ms", fetch.Min)
	}
	if fetch.Max != 200*time.Millisecond {
		t.Errorf("Max = %v, want 200ms", fetch.Max)
	}
	if fetch.Average() != 150*time.Millisecond {
		t.Errorf("Average() = %v, want 150ms", fetch.Average())
	}
}

func TestMetrics_SnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.RecordTiming("fetch.duration", time.Second)

	snapshot := m.Snapshot()
	m.RecordTiming("fetch.duration", time.Second)
	m.IncrCounter("cache.miss")

	if snapshot.Timings["fetch.duration"].Count != 1 {
		t.Error("snapshot timing changed after RecordTiming")
	}
	if _, ok := snapshot.Counters["cache.miss"]; ok {
		t.Error("snapshot counters changed after IncrCounter")
	}
}

func TestMetricsSnapshot_Default(t *testing.T) {
	IncrCounter("test.counter")
	SetGauge("test.gauge", 42)
	RecordTiming("test.timing", time.Millisecond)

	snapshot := MetricsSnapshot()
	if snapshot.Counters["test.counter"] < 1 {
		t.Error("default counter not recorded")
	}
	if snapshot.Gauges["test.gauge"] != 42 {
		t.Errorf("default gauge = %v, want 42", snapshot.Gauges["test.gauge"])
	}

	if _, err := json.Marshal(snapshot); err != nil {
		t.Errorf("snapshot does not marshal: %v", err)
	}
}
