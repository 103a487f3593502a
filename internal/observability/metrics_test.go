package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckInAccepted(t *testing.T) {
	before := testutil.ToFloat64(checkInsCounter)
	ts := time.Date(2022, time.January, 20, 8, 0, 0, 0, time.UTC)

	RecordCheckInAccepted(ts)

	require.Equal(t, before+1, testutil.ToFloat64(checkInsCounter))
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastCheckInGauge))
}

func TestRecordCheckInRejectedByReason(t *testing.T) {
	before := testutil.ToFloat64(checkInRejectedCounter.WithLabelValues(RejectionMaxDistance))

	RecordCheckInRejected(RejectionMaxDistance)
	RecordCheckInRejected(RejectionMaxDistance)

	require.Equal(t, before+2, testutil.ToFloat64(checkInRejectedCounter.WithLabelValues(RejectionMaxDistance)))
}
