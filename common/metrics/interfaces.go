package metrics

// Provider 创建各类指标，具体实现有 disabled、prometheus 和 statsd 三种。
type Provider interface {
	NewCounter(CounterOpts) Counter
	NewGauge(GaugeOpts) Gauge
	NewHistogram(HistogramOpts) Histogram
}

/* ------------------------------------------------------------------------------------------ */

type Counter interface {
	// With 按 label, value 交替的顺序传入标签值，返回带有这些标签值的计数器。
	With(labelValues ...string) Counter
	Add(delta float64)
}

/* ------------------------------------------------------------------------------------------ */

type Gauge interface {
	With(labelValues ...string) Gauge
	Add(delta float64)
	Set(value float64)
}

/* ------------------------------------------------------------------------------------------ */

type Histogram interface {
	With(labelValues ...string) Histogram
	Observe(value float64)
}
