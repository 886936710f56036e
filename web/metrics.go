// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/prometheus/client_golang/prometheus"

	"rivaas.dev/hateoas"
)

// Metrics counts hypermedia responses per endpoint.
// A nil *Metrics records nothing.
type Metrics struct {
	responses *prometheus.CounterVec
	links     *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hateoas_responses_total",
				Help: "Total number of hypermedia responses written, by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		links: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hateoas_links_total",
				Help: "Total number of links rendered, by endpoint and scope",
			},
			[]string{"endpoint", "scope"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hateoas_failures_total",
				Help: "Total number of requests answered with a problem, by endpoint and error code",
			},
			[]string{"endpoint", "code"},
		),
	}

	for _, c := range []prometheus.Collector{m.responses, m.links, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(endpoint string, env *hateoas.Envelope) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(endpoint, statusLabel(env.Status)).Inc()

	m.links.WithLabelValues(endpoint, "root").Add(float64(len(env.Links)))
	var items, fields int
	for _, links := range env.Items {
		items += len(links)
	}
	for _, f := range env.Fields {
		fields += len(f.Links)
	}
	m.links.WithLabelValues(endpoint, "item").Add(float64(items))
	m.links.WithLabelValues(endpoint, "field").Add(float64(fields))
}

func (m *Metrics) failure(endpoint string, err error) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(endpoint, errorCode(err)).Inc()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
