package consumer

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PersistenceHandler appends consumed events to the check_in_event_log table.
type PersistenceHandler struct {
	pool *pgxpool.Pool
}

// NewPersistenceHandler constructs a handler backed by the provided pool.
func NewPersistenceHandler(pool *pgxpool.Pool) *PersistenceHandler {
	return &PersistenceHandler{pool: pool}
}

// Handle stores msg. Redelivered records are ignored, keyed by topic, partition and offset.
func (h *PersistenceHandler) Handle(ctx context.Context, msg Message) error {
	var eventTime any
	if !msg.Timestamp.IsZero() {
		eventTime = msg.Timestamp
	}

	_, err := h.pool.Exec(ctx,
		`INSERT INTO check_in_event_log (topic, kafka_partition, kafka_offset, event_type, schema_id, aggregate_id, payload, event_time)
         VALUES ($1,$2,$3,$4,$5,NULLIF($6, ''),$7,$8)
         ON CONFLICT (topic, kafka_partition, kafka_offset) DO NOTHING`,
		msg.Topic,
		msg.Partition,
		msg.Offset,
		msg.EventType,
		msg.SchemaID,
		msg.AggregateID,
		msg.Payload,
		eventTime,
	)
	return err
}
