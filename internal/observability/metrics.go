package observability

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var defaultDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

type histogram struct {
	buckets []float64
	counts  []uint64
	count   uint64
	sum     float64
}

func newHistogram(buckets []float64) *histogram {
	copyBuckets := make([]float64, len(buckets))
	copy(copyBuckets, buckets)
	return &histogram{
		buckets: copyBuckets,
		counts:  make([]uint64, len(copyBuckets)),
	}
}

func (h *histogram) observe(value float64) {
	if h == nil {
		return
	}
	if value < 0 {
		value = 0
	}
	for idx, bucket := range h.buckets {
		if value <= bucket {
			h.counts[idx]++
			break
		}
	}
	h.count++
	h.sum += value
}

// counterVec is a counter family keyed by an ordered tuple of label values.
type counterVec struct {
	name   string
	help   string
	labels []string
	series map[string]*counterSeries
}

type counterSeries struct {
	values []string
	total  uint64
}

func newCounterVec(name, help string, labels ...string) *counterVec {
	return &counterVec{
		name:   name,
		help:   help,
		labels: labels,
		series: map[string]*counterSeries{},
	}
}

func (c *counterVec) inc(values ...string) {
	key := strings.Join(values, "\xff")
	s, exists := c.series[key]
	if !exists {
		s = &counterSeries{values: append([]string(nil), values...)}
		c.series[key] = s
	}
	s.total++
}

func (c *counterVec) value(values ...string) uint64 {
	if s, ok := c.series[strings.Join(values, "\xff")]; ok {
		return s.total
	}
	return 0
}

func (c *counterVec) render(sb *strings.Builder) {
	sb.WriteString("# HELP " + c.name + " " + c.help + "\n")
	sb.WriteString("# TYPE " + c.name + " counter\n")

	keys := make([]string, 0, len(c.series))
	for key := range c.series {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		s := c.series[key]
		labels := make(map[string]string, len(c.labels))
		for idx, name := range c.labels {
			labels[name] = s.values[idx]
		}
		sb.WriteString(c.name)
		sb.WriteString(formatLabels(labels))
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatUint(s.total, 10))
		sb.WriteString("\n")
	}
}

type routeKey struct {
	route  string
	method string
}

// APIMetrics collects the service's Prometheus series in memory and renders
// them in text exposition format.
type APIMetrics struct {
	mu                 sync.RWMutex
	httpRequests       *counterVec
	httpDurations      map[routeKey]*histogram
	dbQuery            *histogram
	rateLimited        *counterVec
	missionsGenerated  *counterVec
	phrasebankFallback *counterVec
	storeErrors        *counterVec
	lastMissionNumber  int64
}

func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		httpRequests:       newCounterVec("http_requests_total", "Total HTTP requests handled by API.", "route", "method", "status"),
		httpDurations:      map[routeKey]*histogram{},
		dbQuery:            newHistogram(defaultDurationBuckets),
		rateLimited:        newCounterVec("rate_limit_events_total", "Rate-limit rejections by scope and endpoint.", "scope", "endpoint"),
		missionsGenerated:  newCounterVec("missions_generated_total", "Missions composed and stored, by platform and style.", "platform", "style"),
		phrasebankFallback: newCounterVec("phrasebank_fallbacks_total", "Phrase bank lookups that resolved to a default entry.", "kind"),
		storeErrors:        newCounterVec("mission_store_errors_total", "Mission store operations that returned an error.", "operation"),
	}
}

func (m *APIMetrics) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := routeKey{
		route:  normalizeMetricValue(route, "unknown"),
		method: normalizeMetricValue(strings.ToUpper(strings.TrimSpace(method)), "UNKNOWN"),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.httpRequests.inc(key.route, key.method, strconv.Itoa(status))
	h, exists := m.httpDurations[key]
	if !exists {
		h = newHistogram(defaultDurationBuckets)
		m.httpDurations[key] = h
	}
	h.observe(duration.Seconds())
}

func (m *APIMetrics) ObserveDBQuery(duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dbQuery.observe(duration.Seconds())
}

func (m *APIMetrics) IncRateLimited(scope, endpoint string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rateLimited.inc(normalizeMetricValue(scope, "unknown"), normalizeMetricValue(endpoint, "unknown"))
}

func (m *APIMetrics) IncMissionGenerated(platform, style string, missionNumber int64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.missionsGenerated.inc(normalizeMetricValue(platform, "unknown"), normalizeMetricValue(style, "unknown"))
	if missionNumber > m.lastMissionNumber {
		m.lastMissionNumber = missionNumber
	}
}

func (m *APIMetrics) IncPhrasebankFallback(kind string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phrasebankFallback.inc(normalizeMetricValue(kind, "unknown"))
}

func (m *APIMetrics) IncStoreError(operation string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeErrors.inc(normalizeMetricValue(operation, "unknown"))
}

// MissionsGenerated returns the counter value for one platform/style pair.
func (m *APIMetrics) MissionsGenerated(platform, style string) uint64 {
	if m == nil {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.missionsGenerated.value(platform, style)
}

func (m *APIMetrics) Render() string {
	if m == nil {
		return ""
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var sb strings.Builder

	m.httpRequests.render(&sb)

	sb.WriteString("# HELP http_request_duration_seconds HTTP request latency in seconds.\n")
	sb.WriteString("# TYPE http_request_duration_seconds histogram\n")
	durationKeys := make([]routeKey, 0, len(m.httpDurations))
	for key := range m.httpDurations {
		durationKeys = append(durationKeys, key)
	}
	sort.Slice(durationKeys, func(i, j int) bool {
		if durationKeys[i].route != durationKeys[j].route {
			return durationKeys[i].route < durationKeys[j].route
		}
		return durationKeys[i].method < durationKeys[j].method
	})
	for _, key := range durationKeys {
		labels := map[string]string{
			"route":  key.route,
			"method": key.method,
		}
		renderHistogramSeries(&sb, "http_request_duration_seconds", labels, m.httpDurations[key])
	}

	sb.WriteString("# HELP db_query_duration_seconds Database query duration in seconds.\n")
	sb.WriteString("# TYPE db_query_duration_seconds histogram\n")
	renderHistogramSeries(&sb, "db_query_duration_seconds", map[string]string{}, m.dbQuery)

	m.rateLimited.render(&sb)
	m.missionsGenerated.render(&sb)
	m.phrasebankFallback.render(&sb)
	m.storeErrors.render(&sb)

	sb.WriteString("# HELP mission_last_number Highest mission number observed by this process.\n")
	sb.WriteString("# TYPE mission_last_number gauge\n")
	sb.WriteString("mission_last_number ")
	sb.WriteString(strconv.FormatInt(m.lastMissionNumber, 10))
	sb.WriteString("\n")

	return sb.String()
}

func renderHistogramSeries(sb *strings.Builder, metricName string, labels map[string]string, h *histogram) {
	if sb == nil || h == nil {
		return
	}

	writeSample := func(suffix string, sampleLabels map[string]string, value string) {
		sb.WriteString(metricName)
		sb.WriteString(suffix)
		sb.WriteString(formatLabels(sampleLabels))
		sb.WriteString(" ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	cumulative := uint64(0)
	for idx, bucket := range h.buckets {
		cumulative += h.counts[idx]
		withLE := cloneLabels(labels)
		withLE["le"] = strconv.FormatFloat(bucket, 'g', -1, 64)
		writeSample("_bucket", withLE, strconv.FormatUint(cumulative, 10))
	}

	withInf := cloneLabels(labels)
	withInf["le"] = "+Inf"
	writeSample("_bucket", withInf, strconv.FormatUint(h.count, 10))
	writeSample("_sum", labels, strconv.FormatFloat(h.sum, 'g', -1, 64))
	writeSample("_count", labels, strconv.FormatUint(h.count, 10))
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+`="`+escapeLabelValue(labels[key])+`"`)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func cloneLabels(labels map[string]string) map[string]string {
	out := make(map[string]string, len(labels)+1)
	for key, value := range labels {
		out[key] = value
	}
	return out
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, `"`, `\"`)

func escapeLabelValue(value string) string {
	return labelEscaper.Replace(value)
}

func normalizeMetricValue(value, fallback string) string {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return fallback
	}
	return clean
}
