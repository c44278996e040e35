package testutils

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricNames returns the sorted names of all metrics currently
// exposed by the gatherer.
func MetricNames(g prometheus.Gatherer) ([]string, error) {
	metrics, err := g.Gather()
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{})
	for _, metric := range metrics {
		names[metric.GetName()] = struct{}{}
	}
	sorted := slices.Collect(maps.Keys(names))
	slices.Sort(sorted)
	return sorted, nil
}
