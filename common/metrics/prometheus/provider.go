package prometheus

import (
	"github.com/11090815/telcrypt/common/metrics"
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Provider 创建的指标注册到 Registerer 上，Registerer 为空时使用 prometheus 的默认注册表。
type Provider struct {
	Registerer prom.Registerer
}

func NewProvider(reg prom.Registerer) *Provider {
	return &Provider{Registerer: reg}
}

func (p *Provider) registerer() prom.Registerer {
	if p.Registerer == nil {
		return prom.DefaultRegisterer
	}
	return p.Registerer
}

// register 注册 c，如果同名的指标已经注册过，则返回已注册的那个。
func (p *Provider) register(c prom.Collector) prom.Collector {
	if err := p.registerer().Register(c); err != nil {
		if are, ok := err.(prom.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

/* ------------------------------------------------------------------------------------------ */

type Counter struct {
	kitmetrics.Counter
}

func (p *Provider) NewCounter(opts metrics.CounterOpts) metrics.Counter {
	cv := prom.NewCounterVec(
		prom.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      opts.Name,
			Help:      opts.Help,
		},
		opts.LabelNames,
	)
	return &Counter{Counter: prometheus.NewCounter(p.register(cv).(*prom.CounterVec))}
}

func (c *Counter) With(labelsValues ...string) metrics.Counter {
	return &Counter{Counter: c.Counter.With(labelsValues...)}
}

/* ------------------------------------------------------------------------------------------ */

type Gauge struct {
	kitmetrics.Gauge
}

func (p *Provider) NewGauge(opts metrics.GaugeOpts) metrics.Gauge {
	gv := prom.NewGaugeVec(
		prom.GaugeOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      opts.Name,
			Help:      opts.Help,
		},
		opts.LabelNames,
	)
	return &Gauge{Gauge: prometheus.NewGauge(p.register(gv).(*prom.GaugeVec))}
}

func (g *Gauge) With(labelsValues ...string) metrics.Gauge {
	return &Gauge{Gauge: g.Gauge.With(labelsValues...)}
}

/* ------------------------------------------------------------------------------------------ */

type Histogram struct {
	kitmetrics.Histogram
}

func (p *Provider) NewHistogram(opts metrics.HistogramOpts) metrics.Histogram {
	hv := prom.NewHistogramVec(
		prom.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      opts.Name,
			Help:      opts.Help,
			Buckets:   opts.Buckets,
		},
		opts.LabelNames,
	)
	return &Histogram{Histogram: prometheus.NewHistogram(p.register(hv).(*prom.HistogramVec))}
}

func (h *Histogram) With(labelsValues ...string) metrics.Histogram {
	return &Histogram{Histogram: h.Histogram.With(labelsValues...)}
}
