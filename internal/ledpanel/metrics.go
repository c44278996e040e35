package ledpanel

import "github.com/prometheus/client_golang/prometheus"

var _ prometheus.Collector = &metrics{}

type metrics struct {
	presses *prometheus.CounterVec
}

func newMetrics() *metrics {
	return &metrics{
		presses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledpanel_button_presses_total",
			Help: "Number of button presses, by switch and debounce result",
		}, []string{"switch", "result"}),
	}
}

func (m *metrics) Describe(ch chan<- *prometheus.Desc) {
	m.presses.Describe(ch)
}

func (m *metrics) Collect(ch chan<- prometheus.Metric) {
	m.presses.Collect(ch)
}
