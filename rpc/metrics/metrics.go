// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - Prometheus counters for the RPC services
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/iotassetd/fault"
)

const (
	namespace = "iotassetd"
	subsystem = "rpc"

	codeOK = "OK"
)

var (
	registry = prometheus.NewRegistry()

	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "RPC requests by method and result code.",
		},
		[]string{"method", "code"},
	)

	// Connections - currently open RPC connections
	Connections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "connections",
			Help:      "Open RPC connections.",
		},
	)
)

func init() {
	registry.MustRegister(requests, Connections)
	registry.MustRegister(prometheus.NewGoCollector())
}

// Observe - count one request by its result
func Observe(method string, err error) {
	code := fault.Code(err)
	if "" == code {
		code = codeOK
	}
	requests.WithLabelValues(method, code).Inc()
}

// Requests - the request count for a method and result code
func Requests(method string, code string) prometheus.Counter {
	return requests.WithLabelValues(method, code)
}

// Handler - exposition of all metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
