package a

import "github.com/prometheus/client_golang/prometheus"

func owned(c prometheus.Collector) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)
	_ = reg.Register(c)
}

func global(c prometheus.Collector) {
	prometheus.MustRegister(c)        // want "use of prometheus.MustRegister is forbidden"
	_ = prometheus.Register(c)        // want "use of prometheus.Register is forbidden"
	_ = prometheus.Unregister(c)      // want "use of prometheus.Unregister is forbidden"
	_ = prometheus.DefaultGatherer    // want "use of prometheus.DefaultGatherer is forbidden"
	_ = prometheus.DefaultRegisterer  // want "use of prometheus.DefaultRegisterer is forbidden"
}
