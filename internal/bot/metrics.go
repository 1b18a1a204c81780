// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for command execution metrics.
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusRejected    = "rejected"
	StatusUsage       = "usage"
	StatusNotFound    = "not_found"
	StatusNotLoggedIn = "not_logged_in"
)

// CommandExecutions is the counter for command executions.
// Use RegisterMetrics to register this with a Prometheus registry.
var CommandExecutions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "defisensei_command_executions_total",
		Help: "Total number of chat command executions",
	},
	[]string{"command", "status"},
)

// CommandDuration is the histogram for command execution duration.
var CommandDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "defisensei_command_duration_seconds",
		Help:    "Chat command execution duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"command"},
)

// OTPIssued counts one-time codes stored in the ledger.
var OTPIssued = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "defisensei_otp_issued_total",
		Help: "Total number of one-time codes issued",
	},
)

// RegisterMetrics registers the bot metrics with reg. Panics if registration
// fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(CommandExecutions)
	reg.MustRegister(CommandDuration)
	reg.MustRegister(OTPIssued)
}

func RecordCommandExecution(command, status string) {
	CommandExecutions.WithLabelValues(command, status).Inc()
}

func RecordCommandDuration(command string, duration time.Duration) {
	CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordOTPIssued is handed to the auth service as its issue observer.
func RecordOTPIssued() {
	OTPIssued.Inc()
}

// metricsRecorder collects the labels of a single dispatch.
type metricsRecorder struct {
	startTime time.Time
	command   string
	status    string
}

func newMetricsRecorder() *metricsRecorder {
	return &metricsRecorder{startTime: time.Now(), status: StatusSuccess}
}

// record writes the collected metrics if a command name is known. Unknown
// names are folded into one label so callers cannot grow the label space.
func (m *metricsRecorder) record() {
	if m.command == "" {
		return
	}

	RecordCommandExecution(m.command, m.status)
	RecordCommandDuration(m.command, time.Since(m.startTime))
}
