package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo("api", &buf)
	logger.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger.Info("mission_generated", Fields{
		"mission_number": 3,
		"platform":       "linkedin",
		"empty":          "  ",
		"skipped":        nil,
		"level":          "spoofed",
		"error":          errors.New("boom"),
	})
	logger.Warn("second", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "info" || entry["msg"] != "mission_generated" || entry["service"] != "api" {
		t.Fatalf("unexpected envelope: %#v", entry)
	}
	if entry["ts"] != "2025-01-02T03:04:05Z" {
		t.Fatalf("unexpected ts: %v", entry["ts"])
	}
	if entry["platform"] != "linkedin" || entry["mission_number"] != float64(3) {
		t.Fatalf("missing fields: %#v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("errors must be rendered as strings, got %#v", entry["error"])
	}
	if entry["field_level"] != "spoofed" {
		t.Fatalf("reserved keys must be prefixed, got %#v", entry)
	}
	if _, ok := entry["empty"]; ok {
		t.Fatalf("blank string fields must be dropped")
	}
	if _, ok := entry["skipped"]; ok {
		t.Fatalf("nil fields must be dropped")
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var logger *Logger
	logger.Error("ignored", Fields{"k": "v"})
}

func TestFieldsWith(t *testing.T) {
	base := Fields{"a": 1, "b": 2}
	merged := base.With(Fields{"b": 3, "c": 4})
	if merged["a"] != 1 || merged["b"] != 3 || merged["c"] != 4 {
		t.Fatalf("unexpected merge: %#v", merged)
	}
	if base["b"] != 2 {
		t.Fatalf("base fields must not be mutated")
	}
}

func TestAPIMetricsRender(t *testing.T) {
	metrics := NewAPIMetrics()
	metrics.ObserveHTTPRequest("/api/missions/generate", "post", 201, 30*time.Millisecond)
	metrics.ObserveHTTPRequest("/api/missions/generate", "POST", 201, 3*time.Second)
	metrics.ObserveHTTPRequest("", "GET", 404, time.Millisecond)
	metrics.ObserveDBQuery(2 * time.Millisecond)
	metrics.IncRateLimited("ip", "missions_generate")
	metrics.IncMissionGenerated("linkedin", "direct", 7)
	metrics.IncMissionGenerated("linkedin", "direct", 5)
	metrics.IncPhrasebankFallback("platform")
	metrics.IncStoreError("create")

	out := metrics.Render()
	expected := []string{
		`http_requests_total{method="POST",route="/api/missions/generate",status="201"} 2`,
		`http_requests_total{method="GET",route="unknown",status="404"} 1`,
		`http_request_duration_seconds_bucket{le="0.05",method="POST",route="/api/missions/generate"} 1`,
		`http_request_duration_seconds_bucket{le="+Inf",method="POST",route="/api/missions/generate"} 2`,
		`http_request_duration_seconds_count{method="POST",route="/api/missions/generate"} 2`,
		`db_query_duration_seconds_count 1`,
		`rate_limit_events_total{endpoint="missions_generate",scope="ip"} 1`,
		`missions_generated_total{platform="linkedin",style="direct"} 2`,
		`phrasebank_fallbacks_total{kind="platform"} 1`,
		`mission_store_errors_total{operation="create"} 1`,
		`mission_last_number 7`,
		`# TYPE missions_generated_total counter`,
	}
	for _, line := range expected {
		if !strings.Contains(out, line) {
			t.Fatalf("expected metrics output to contain %q\n%s", line, out)
		}
	}

	if got := metrics.MissionsGenerated("linkedin", "direct"); got != 2 {
		t.Fatalf("expected 2 generated missions, got %d", got)
	}
}

func TestEscapeLabelValue(t *testing.T) {
	got := formatLabels(map[string]string{"topic": "a\"b\\c\nd"})
	if got != `{topic="a\"b\\c\nd"}` {
		t.Fatalf("unexpected escaping: %s", got)
	}
}

func TestNilMetricsAreNoop(t *testing.T) {
	var metrics *APIMetrics
	metrics.ObserveHTTPRequest("/", "GET", 200, time.Millisecond)
	metrics.IncMissionGenerated("x", "y", 1)
	if metrics.Render() != "" {
		t.Fatalf("nil metrics must render empty")
	}
}
