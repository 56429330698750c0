package engine

import "github.com/11090815/telcrypt/common/metrics"

const (
	// OpDecryptResponse airtel 响应的 DES-ECB 解密。
	OpDecryptResponse = "des_ecb_decrypt"
	// OpEncryptPayload vi 请求的 PBKDF2 + AES-CBC 加密。
	OpEncryptPayload = "aes_cbc_encrypt"

	resultOK    = "ok"
	resultError = "error"
)

type Metrics struct {
	Operations     metrics.Counter
	BytesProcessed metrics.Counter
	Duration       metrics.Histogram
}

var (
	OperationsOpts = metrics.CounterOpts{
		Namespace:    "telcrypt",
		Subsystem:    "engine",
		Name:         "operations",
		Help:         "Number of cipher operations, by operation and result",
		LabelNames:   []string{"operation", "result"},
		StatsdFormat: "%{#fqname}.%{operation}.%{result}",
	}

	BytesProcessedOpts = metrics.CounterOpts{
		Namespace:    "telcrypt",
		Subsystem:    "engine",
		Name:         "bytes_processed",
		Help:         "Number of input bytes handled by successful cipher operations",
		LabelNames:   []string{"operation"},
		StatsdFormat: "%{#fqname}.%{operation}",
	}

	DurationOpts = metrics.HistogramOpts{
		Namespace:    "telcrypt",
		Subsystem:    "engine",
		Name:         "operation_duration",
		Help:         "Time taken in seconds by a cipher operation",
		Buckets:      []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		LabelNames:   []string{"operation"},
		StatsdFormat: "%{#fqname}.%{operation}",
	}
)

func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		Operations:     p.NewCounter(OperationsOpts),
		BytesProcessed: p.NewCounter(BytesProcessedOpts),
		Duration:       p.NewHistogram(DurationOpts),
	}
}
