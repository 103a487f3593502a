//go:build integration

package outbox

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence/postgres"
	"example.com/gymcheckin/internal/testsupport"
	platformevents "example.com/gymcheckin/libs/go/events"
)

func TestDispatcherPublishesRepositoryEvents(t *testing.T) {
	ctx := context.Background()
	pool := testsupport.StartPostgres(ctx, t)
	seedGymAndCheckIn(t, ctx, pool)

	producer := &stubProducer{}
	registry := &stubRegistry{id: 42}
	dispatcher := NewDispatcher(pool, producer, registry, 10*time.Millisecond, 5)

	beforeDelivered := testutil.ToFloat64(deliveredCounter)
	beforeHistogram := histogramSampleCount(t)

	require.NoError(t, dispatcher.processBatch(ctx))

	require.Len(t, producer.writes, 2)
	require.Equal(t, platformevents.TopicGymEvents, producer.writes[0].topic)
	require.Equal(t, platformevents.TopicCheckInEvents, producer.writes[1].topic)

	require.InDelta(t, beforeDelivered+2, testutil.ToFloat64(deliveredCounter), 0.0001)
	require.Greater(t, histogramSampleCount(t), beforeHistogram)

	var pending int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox WHERE published_at IS NULL`).Scan(&pending))
	require.Zero(t, pending)
}

func TestDispatcherRoutesMessagesToDLQOnFailure(t *testing.T) {
	ctx := context.Background()
	pool := testsupport.StartPostgres(ctx, t)
	seedGymAndCheckIn(t, ctx, pool)

	producer := &stubProducer{err: errors.New("kafka write failed")}
	dispatcher := NewDispatcher(pool, producer, &stubRegistry{id: 7}, 10*time.Millisecond, 5)

	beforeFailed := testutil.ToFloat64(failedCounter)
	beforeDLQ := testutil.ToFloat64(dlqCounter.WithLabelValues(platformevents.TopicCheckInEvents))

	require.NoError(t, dispatcher.processBatch(ctx))

	require.InDelta(t, beforeFailed+2, testutil.ToFloat64(failedCounter), 0.0001)
	require.InDelta(t, beforeDLQ+1, testutil.ToFloat64(dlqCounter.WithLabelValues(platformevents.TopicCheckInEvents)), 0.0001)

	var dlqCount int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox_dlq WHERE reason LIKE 'kafka write failed%'`).Scan(&dlqCount))
	require.Equal(t, 2, dlqCount)

	var published int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox WHERE published_at IS NOT NULL`).Scan(&published))
	require.Equal(t, 2, published)
}

func TestDLQManagerRequeuesAndQuarantines(t *testing.T) {
	ctx := context.Background()
	pool := testsupport.StartPostgres(ctx, t)
	seedGymAndCheckIn(t, ctx, pool)

	failing := NewDispatcher(pool, &stubProducer{err: errors.New("broker unreachable")}, &stubRegistry{id: 3}, 10*time.Millisecond, 5)
	require.NoError(t, failing.processBatch(ctx))

	// Exhaust the gym entry so it is quarantined instead of requeued.
	_, err := pool.Exec(ctx, `UPDATE outbox_dlq SET retry_count = 2 WHERE event_type = $1`, platformevents.EventTypeGymCreated)
	require.NoError(t, err)

	manager := NewDLQManager(pool, 2, time.Second, nil)
	processed, err := manager.RunOnce(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 2, processed)

	var quarantined int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox_dlq WHERE quarantined_at IS NOT NULL`).Scan(&quarantined))
	require.Equal(t, 1, quarantined)

	updateBacklogGauge(ctx, pool)
	require.Equal(t, float64(1), testutil.ToFloat64(dlqQuarantinedGauge.WithLabelValues(platformevents.EventTypeGymCreated)))
	require.Zero(t, testutil.ToFloat64(dlqBacklogGauge.WithLabelValues(platformevents.EventTypeCheckInCreated)))

	var requeued int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM outbox WHERE published_at IS NULL AND event_type = $1`,
		platformevents.EventTypeCheckInCreated,
	).Scan(&requeued))
	require.Equal(t, 1, requeued)

	producer := &stubProducer{}
	replay := NewDispatcher(pool, producer, &stubRegistry{id: 3}, 10*time.Millisecond, 5)
	require.NoError(t, replay.processBatch(ctx))
	require.Len(t, producer.writes, 1)
	require.Equal(t, platformevents.TopicCheckInEvents, producer.writes[0].topic)
}

func TestDispatcherDeliversToKafka(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pool := testsupport.StartPostgres(ctx, t)
	broker := testsupport.StartKafka(ctx, t)
	checkIn := seedGymAndCheckIn(t, ctx, pool)

	producer := NewKafkaProducer([]string{broker}, WithBatchTimeout(10*time.Millisecond))
	t.Cleanup(func() { _ = producer.Close() })

	conn, err := kafka.Dial("tcp", broker)
	require.NoError(t, err)
	require.NoError(t, conn.CreateTopics(
		kafka.TopicConfig{Topic: platformevents.TopicGymEvents, NumPartitions: 1, ReplicationFactor: 1},
		kafka.TopicConfig{Topic: platformevents.TopicCheckInEvents, NumPartitions: 1, ReplicationFactor: 1},
	))
	require.NoError(t, conn.Close())

	dispatcher := NewDispatcher(pool, producer, &stubRegistry{id: 11}, 10*time.Millisecond, 5)
	require.NoError(t, dispatcher.processBatch(ctx))

	var dlqCount int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox_dlq`).Scan(&dlqCount))
	require.Zero(t, dlqCount)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       platformevents.TopicCheckInEvents,
		Partition:   0,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	t.Cleanup(func() { _ = reader.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()
	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)

	require.Equal(t, checkIn.UserID, string(msg.Key))
	require.Equal(t, byte(0), msg.Value[0])
	require.Equal(t, uint32(11), binary.BigEndian.Uint32(msg.Value[1:5]))
	require.Contains(t, string(msg.Value[5:]), checkIn.ID)
}

func seedGymAndCheckIn(t *testing.T, ctx context.Context, pool *pgxpool.Pool) *domain.CheckIn {
	t.Helper()

	clock := domain.NewFixedClock(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))
	gyms := postgres.NewGymRepository(pool)
	checkIns := postgres.NewCheckInRepository(pool, clock)

	gym, err := gyms.Create(ctx, domain.CreateGymData{Title: "JavaScript Gym", Latitude: -27.2092052, Longitude: -49.6401091})
	require.NoError(t, err)

	checkIn, err := checkIns.Create(ctx, domain.CreateCheckInData{UserID: "user-01", GymID: gym.ID})
	require.NoError(t, err)
	return checkIn
}

func histogramSampleCount(t *testing.T) uint64 {
	t.Helper()

	metric := &dto.Metric{}
	require.NoError(t, batchDuration.Write(metric))
	hist := metric.GetHistogram()
	require.NotNil(t, hist)
	return hist.GetSampleCount()
}
