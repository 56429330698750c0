package engine

import (
	"context"
	"strings"
	"time"

	"github.com/11090815/telcrypt/common/metrics"
	"github.com/11090815/telcrypt/common/metrics/disabled"
	"github.com/11090815/telcrypt/common/metrics/prometheus"
	"github.com/11090815/telcrypt/common/metrics/statsd"
	"github.com/11090815/telcrypt/common/mlog"
	"github.com/11090815/telcrypt/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

// NewMetricsProvider 根据 metrics.provider 创建指标提供者，可选值为 disabled、prometheus 和 statsd。
// 使用 statsd 时，会在后台按 metrics.statsd.writeInterval 把指标发往 metrics.statsd.address，
// 调用返回的 stop 函数结束发送。
func NewMetricsProvider(v *viper.Viper, logger mlog.Logger) (provider metrics.Provider, stop func(), err error) {
	stop = func() {}
	if logger == nil {
		logger = mlog.GetLogger("metrics", mlog.DefaultLevel())
	}

	switch kind := v.GetString("metrics.provider"); kind {
	case "", "disabled":
		return &disabled.Provider{}, stop, nil
	case "prometheus":
		return prometheus.NewProvider(prom.DefaultRegisterer), stop, nil
	case "statsd":
		interval := v.GetDuration("metrics.statsd.writeInterval")
		if interval <= 0 {
			return nil, nil, errors.NewErrorf("invalid metrics.statsd.writeInterval \"%s\"", v.GetString("metrics.statsd.writeInterval"))
		}
		network := v.GetString("metrics.statsd.network")
		address := v.GetString("metrics.statsd.address")

		prefix := v.GetString("metrics.statsd.prefix")
		if prefix != "" && !strings.HasSuffix(prefix, ".") {
			prefix += "."
		}
		p := statsd.NewProvider(prefix, logger)
		ctx, cancel := context.WithCancel(context.Background())
		ticker := time.NewTicker(interval)
		go p.Statsd.SendLoop(ctx, ticker.C, network, address)
		logger.Infof("Sending statsd metrics to %s://%s every %s", network, address, interval)

		return p, func() {
			ticker.Stop()
			cancel()
		}, nil
	default:
		return nil, nil, errors.NewErrorf("unknown metrics provider \"%s\"", kind)
	}
}
