// Package postgres provides Postgres-backed repositories that record outbox
// events in the same transaction as the entity they describe.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	platformevents "example.com/gymcheckin/libs/go/events"
)

// EventMetadata describes how to route an outbox event.
type EventMetadata struct {
	AggregateType string
	Topic         string
	SchemaSubject string
}

var eventCatalog = map[string]EventMetadata{
	platformevents.EventTypeCheckInCreated: {
		AggregateType: "check_in",
		Topic:         platformevents.TopicCheckInEvents,
		SchemaSubject: platformevents.TopicCheckInEvents + "-value",
	},
	platformevents.EventTypeGymCreated: {
		AggregateType: "gym",
		Topic:         platformevents.TopicGymEvents,
		SchemaSubject: platformevents.TopicGymEvents + "-value",
	},
}

// outboxEvent is a pending outbox row.
type outboxEvent struct {
	EventType    string
	AggregateID  string
	PartitionKey string
	Payload      interface{}
}

func insertOutbox(ctx context.Context, tx pgx.Tx, event outboxEvent) error {
	body, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	meta, ok := eventCatalog[event.EventType]
	if !ok {
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}

	dedupeKey := fmt.Sprintf("%s:%s", event.AggregateID, event.EventType)

	const stmt = `INSERT INTO outbox (aggregate_type, aggregate_id, event_type, topic, schema_subject, partition_key, payload, dedupe_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err = tx.Exec(ctx, stmt,
		meta.AggregateType,
		event.AggregateID,
		event.EventType,
		meta.Topic,
		meta.SchemaSubject,
		event.PartitionKey,
		body,
		dedupeKey,
	)
	return err
}
