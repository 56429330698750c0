package internal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/11090815/telcrypt/common/metrics"
)

var (
	formatRegexp            = regexp.MustCompile(`%{([#?[:alnum:]_]+)}`)
	invalidLabelValueRegexp = regexp.MustCompile(`[.|:\s]`)
)

// Namer 根据 StatsdFormat 把指标名和标签值拼接成 statsd 使用的扁平名字。
type Namer struct {
	namespace  string
	subsystem  string
	name       string
	nameFormat string
	labelNames map[string]struct{}
}

func newNamer(namespace, subsystem, name, format string, labelNames []string) *Namer {
	return &Namer{
		namespace:  namespace,
		subsystem:  subsystem,
		name:       name,
		nameFormat: format,
		labelNames: sliceToSet(labelNames),
	}
}

func NewCounterNamer(opts metrics.CounterOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

func NewGaugeNamer(opts metrics.GaugeOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

func NewHistogramNamer(opts metrics.HistogramOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

// FullyQualifiedName 用 "." 连接非空的 namespace、subsystem 和 name。
func (n *Namer) FullyQualifiedName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.namespace, n.subsystem, n.name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// Format 把 nameFormat 中的 %{label} 替换成对应的标签值，标签值中的 "."、"|"、":" 和空白符会
// 被替换成 "_"。
func (n *Namer) Format(labelValues ...string) string {
	labels2values := n.labelsToMap(labelValues)

	cursor := 0
	var segments []string

	matches := formatRegexp.FindAllStringSubmatchIndex(n.nameFormat, -1)
	for _, match := range matches {
		start, end := match[0], match[1]
		labelStart, labelEnd := match[2], match[3]

		if start > cursor {
			segments = append(segments, n.nameFormat[cursor:start])
		}

		key := n.nameFormat[labelStart:labelEnd]
		var value string
		switch key {
		case "#namespace":
			value = n.namespace
		case "#subsystem":
			value = n.subsystem
		case "#name":
			value = n.name
		case "#fqname":
			value = n.FullyQualifiedName()
		default:
			var ok bool
			value, ok = labels2values[key]
			if !ok {
				panic(fmt.Sprintf("invalid label in name format: %s", key))
			}
			value = invalidLabelValueRegexp.ReplaceAllString(value, "_")
		}
		segments = append(segments, value)
		cursor = end
	}

	if cursor != len(n.nameFormat) {
		segments = append(segments, n.nameFormat[cursor:])
	}
	return strings.Join(segments, "")
}

/* ------------------------------------------------------------------------------------------ */

func (n *Namer) validateLabel(label string) {
	if _, ok := n.labelNames[label]; !ok {
		panic(fmt.Sprintf("invalid label name: %s", label))
	}
}

func (n *Namer) labelsToMap(labelValues []string) map[string]string {
	kvs := make(map[string]string)
	for i := 0; i < len(labelValues); i += 2 {
		label := labelValues[i]
		n.validateLabel(label)
		if i == len(labelValues)-1 {
			kvs[label] = "unknown"
		} else {
			kvs[label] = labelValues[i+1]
		}
	}
	return kvs
}

func sliceToSet(slice []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, item := range slice {
		set[item] = struct{}{}
	}
	return set
}
