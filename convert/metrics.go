package convert

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
)

type metrics struct {
	derivations *prometheus.CounterVec
	decodes     *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blsconv",
			Name:      "derivations_total",
			Help:      "Number of scalars derived by hash-to-field.",
		}, []string{"backend"}),
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blsconv",
			Name:      "decodes_total",
			Help:      "Number of decode attempts by kind and result.",
		}, []string{"backend", "kind", "result"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.derivations, err = register(reg, m.derivations); err != nil {
		return nil, err
	}
	if m.decodes, err = register(reg, m.decodes); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg. If an identical collector is already present,
// e.g. from another Converter sharing the registry, that one is returned.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, err
}
