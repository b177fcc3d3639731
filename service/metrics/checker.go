package metrics

import (
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	gocl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// MetricFamiliesChecker gathers a registry once and lets tests look up samples.
type MetricFamiliesChecker struct {
	families []*gocl.MetricFamily
	t        require.TestingT
}

type MetricFamilyChecker struct {
	fam *gocl.MetricFamily
	t   require.TestingT
}

func NewMetricChecker(t require.TestingT, reg *prometheus.Registry) *MetricFamiliesChecker {
	families, err := reg.Gather()
	require.NoError(t, err, "must gather metrics")
	return &MetricFamiliesChecker{families: families, t: t}
}

// FindByName fails the test unless exactly one family has the given name.
func (m *MetricFamiliesChecker) FindByName(name string) *MetricFamilyChecker {
	var found *gocl.MetricFamily
	for _, f := range m.families {
		if f.GetName() != name {
			continue
		}
		require.Nil(m.t, found, "duplicate metric family %q", name)
		found = f
	}
	require.NotNil(m.t, found, "cannot find metric family %q", name)
	return &MetricFamilyChecker{fam: found, t: m.t}
}

// Has reports whether a family with the given name was gathered.
func (m *MetricFamiliesChecker) Has(name string) bool {
	for _, f := range m.families {
		if f.GetName() == name {
			return true
		}
	}
	return false
}

// FindByLabels fails the test unless exactly one metric carries all the given labels.
func (f *MetricFamilyChecker) FindByLabels(labels map[string]string) *gocl.Metric {
	var found *gocl.Metric
	for _, m := range f.fam.Metric {
		if !matchesLabels(m, labels) {
			continue
		}
		require.Nil(f.t, found, "more than one metric matches labels %v", labels)
		found = m
	}
	require.NotNil(f.t, found, "cannot find metric with labels %v", labels)
	return found
}

func matchesLabels(m *gocl.Metric, labels map[string]string) bool {
outer:
	for k, v := range labels {
		for _, lab := range m.GetLabel() {
			if lab.GetName() == k && lab.GetValue() == v {
				continue outer
			}
		}
		return false
	}
	return true
}

// Dump renders the gathered families as indented JSON, for debugging.
func (m *MetricFamiliesChecker) Dump() string {
	out, _ := json.MarshalIndent(m.families, "  ", "  ")
	return string(out)
}
