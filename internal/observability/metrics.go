// Package observability exposes the service-level Prometheus collectors.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Rejection reasons reported by RecordCheckInRejected.
const (
	RejectionGymNotFound   = "gym_not_found"
	RejectionMaxDistance   = "max_distance"
	RejectionDailyLimit    = "daily_limit"
	RejectionStorageFailed = "storage_failed"
)

var (
	checkInsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "checkin_service",
		Subsystem: "checkins",
		Name:      "accepted_total",
		Help:      "Number of check-ins accepted and persisted.",
	})

	checkInRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkin_service",
		Subsystem: "checkins",
		Name:      "rejected_total",
		Help:      "Number of check-in attempts rejected, labeled by reason.",
	}, []string{"reason"})

	lastCheckInGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "checkin_service",
		Subsystem: "checkins",
		Name:      "last_checkin_timestamp_seconds",
		Help:      "Unix timestamp of the most recent accepted check-in.",
	})

	gymsCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "checkin_service",
		Subsystem: "gyms",
		Name:      "created_total",
		Help:      "Number of gyms registered.",
	})

	nearbyCacheCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkin_service",
		Subsystem: "gyms",
		Name:      "nearby_cache_lookups_total",
		Help:      "Nearby-gym cache lookups, labeled by result (hit, miss, error).",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(checkInsCounter, checkInRejectedCounter, lastCheckInGauge, gymsCreatedCounter, nearbyCacheCounter)
}

// RecordCheckInAccepted counts an accepted check-in and moves the watermark gauge.
func RecordCheckInAccepted(ts time.Time) {
	checkInsCounter.Inc()
	if ts.IsZero() {
		return
	}
	lastCheckInGauge.Set(float64(ts.Unix()))
}

// RecordCheckInRejected counts a rejected check-in attempt.
func RecordCheckInRejected(reason string) {
	checkInRejectedCounter.WithLabelValues(reason).Inc()
}

// RecordGymCreated counts a registered gym.
func RecordGymCreated() {
	gymsCreatedCounter.Inc()
}

// RecordNearbyCacheLookup counts a nearby-gym cache lookup by result.
func RecordNearbyCacheLookup(result string) {
	nearbyCacheCounter.WithLabelValues(result).Inc()
}
