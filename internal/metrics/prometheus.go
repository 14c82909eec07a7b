package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusCollector implements Collector using Prometheus metrics,
// following infodancer-pop3d/internal/metrics.PrometheusCollector's shape:
// one struct field per metric, all registered up front in the constructor.
type PrometheusCollector struct {
	loginAttemptsTotal *prometheus.CounterVec
	activeUsers        prometheus.Gauge
	mailboxDepth       prometheus.Histogram
	mailboxOverflow    prometheus.Counter
	chatRoomSize       prometheus.Gauge
	broadcastDropped   prometheus.Counter
}

// NewPrometheusCollector creates and registers a PrometheusCollector
// against reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		loginAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_login_attempts_total",
			Help: "Total number of LogIn attempts by outcome.",
		}, []string{"result"}),
		activeUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chat_active_users",
			Help: "Current number of online users.",
		}),
		mailboxDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chat_mailbox_depth",
			Help:    "Mailbox depth observed at append time.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		mailboxOverflow: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_mailbox_overflow_total",
			Help: "Total number of mailbox appends rejected because the mailbox was full.",
		}),
		chatRoomSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chat_room_size",
			Help: "Current number of joined Chat endpoints.",
		}),
		broadcastDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_broadcast_dropped_total",
			Help: "Total number of broadcast messages dropped for a single endpoint.",
		}),
	}

	reg.MustRegister(
		c.loginAttemptsTotal,
		c.activeUsers,
		c.mailboxDepth,
		c.mailboxOverflow,
		c.chatRoomSize,
		c.broadcastDropped,
	)

	return c
}

func (c *PrometheusCollector) LoginAttempt(result string) {
	c.loginAttemptsTotal.WithLabelValues(result).Inc()
}

func (c *PrometheusCollector) ActiveUsers(n int) { c.activeUsers.Set(float64(n)) }

func (c *PrometheusCollector) MailboxAppend(depth int) { c.mailboxDepth.Observe(float64(depth)) }

func (c *PrometheusCollector) MailboxOverflow() { c.mailboxOverflow.Inc() }

func (c *PrometheusCollector) ChatRoomSize(n int) { c.chatRoomSize.Set(float64(n)) }

func (c *PrometheusCollector) BroadcastDropped() { c.broadcastDropped.Inc() }
