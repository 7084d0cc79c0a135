package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Gather collects the harvest metric families from g, sorted by name.
// Families registered by other packages (go runtime, process) are skipped.
func Gather(g prometheus.Gatherer) ([]*dto.MetricFamily, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGatherFailed, err)
	}

	out := families[:0]
	for _, mf := range families {
		if _, ok := harvestFamilies[mf.GetName()]; ok {
			out = append(out, mf)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetName() < out[j].GetName() })
	return out, nil
}

// Summarize flattens the harvest series in g into a map keyed by
// name{label="value",...}, the way the text exposition format names them.
func Summarize(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := Gather(g)
	if err != nil {
		return nil, err
	}

	series := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			series[seriesKey(mf.GetName(), m.GetLabel())] = sampleValue(m)
		}
	}
	return series, nil
}

// WriteText writes the harvest families in g in the Prometheus text format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := Gather(g)
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf(ErrMsgWriteFailed, mf.GetName(), err)
		}
	}
	return nil
}

func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}

func sampleValue(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	case m.GetUntyped() != nil:
		return m.GetUntyped().GetValue()
	}
	return 0
}
