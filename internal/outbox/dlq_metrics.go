package outbox

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	platformevents "example.com/gymcheckin/libs/go/events"
)

var (
	dlqRequeuedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkin_service",
		Subsystem: "dlq",
		Name:      "messages_requeued_total",
		Help:      "Number of DLQ entries reinserted into the primary outbox.",
	}, []string{"topic", "event_type"})

	dlqQuarantinedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkin_service",
		Subsystem: "dlq",
		Name:      "messages_quarantined_total",
		Help:      "Number of DLQ entries quarantined after exhausting retries.",
	}, []string{"topic", "event_type"})

	dlqRetryCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkin_service",
		Subsystem: "dlq",
		Name:      "retry_scheduled_total",
		Help:      "Number of times a DLQ entry was scheduled for a future retry.",
	}, []string{"topic", "event_type"})

	dlqBacklogGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "checkin_service",
		Subsystem: "dlq",
		Name:      "queued_messages",
		Help:      "Entries awaiting retry in the DLQ, by event type.",
	}, []string{"event_type"})

	dlqQuarantinedGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "checkin_service",
		Subsystem: "dlq",
		Name:      "quarantined_messages",
		Help:      "Entries parked in quarantine after exhausting retries, by event type.",
	}, []string{"event_type"})
)

// trackedEventTypes seeds backlog gauges so an empty DLQ reports zero.
var trackedEventTypes = []string{platformevents.EventTypeGymCreated, platformevents.EventTypeCheckInCreated}

func init() {
	prometheus.MustRegister(dlqRequeuedCounter, dlqQuarantinedCounter, dlqRetryCounter, dlqBacklogGauge, dlqQuarantinedGauge)
}

func recordDLQRequeued(entry dlqEntry) {
	dlqRequeuedCounter.WithLabelValues(entry.Topic, entry.EventType).Inc()
}

func recordDLQQuarantined(entry dlqEntry) {
	dlqQuarantinedCounter.WithLabelValues(entry.Topic, entry.EventType).Inc()
}

func recordDLQRetry(entry dlqEntry) {
	dlqRetryCounter.WithLabelValues(entry.Topic, entry.EventType).Inc()
}

// dlqBacklog counts pending and quarantined DLQ entries for one event type.
type dlqBacklog struct {
	EventType   string
	Pending     int
	Quarantined int
}

func updateBacklogGauge(ctx context.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(ctx,
		`SELECT event_type,
                COUNT(*) FILTER (WHERE quarantined_at IS NULL),
                COUNT(*) FILTER (WHERE quarantined_at IS NOT NULL)
           FROM outbox_dlq
          GROUP BY event_type`)
	if err != nil {
		return
	}
	backlog, err := pgx.CollectRows(rows, pgx.RowToStructByPos[dlqBacklog])
	if err != nil {
		return
	}
	setBacklogGauges(backlog)
}

func setBacklogGauges(backlog []dlqBacklog) {
	for _, eventType := range trackedEventTypes {
		dlqBacklogGauge.WithLabelValues(eventType).Set(0)
		dlqQuarantinedGauge.WithLabelValues(eventType).Set(0)
	}
	for _, entry := range backlog {
		dlqBacklogGauge.WithLabelValues(entry.EventType).Set(float64(entry.Pending))
		dlqQuarantinedGauge.WithLabelValues(entry.EventType).Set(float64(entry.Quarantined))
	}
}
