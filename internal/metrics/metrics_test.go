package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestModelMetrics(t *testing.T) {
	t.Run("BlocksCreated", func(t *testing.T) {
		before := testutil.ToFloat64(BlocksCreated)
		BlocksCreated.Inc()
		assert.Equal(t, before+1, testutil.ToFloat64(BlocksCreated))
	})

	t.Run("WarpsMaterialized", func(t *testing.T) {
		before := testutil.ToFloat64(WarpsMaterialized)
		WarpsMaterialized.Add(3)
		assert.Equal(t, before+3, testutil.ToFloat64(WarpsMaterialized))
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		ValidationFailures.WithLabelValues("block").Inc()
		ValidationFailures.WithLabelValues("block").Inc()
		ValidationFailures.WithLabelValues("thread").Inc()

		assert.GreaterOrEqual(t, testutil.ToFloat64(ValidationFailures.WithLabelValues("block")), float64(2))
		assert.GreaterOrEqual(t, testutil.ToFloat64(ValidationFailures.WithLabelValues("thread")), float64(1))
	})

	t.Run("BlockGauges", func(t *testing.T) {
		BlockThreads.Set(1000)
		BlockWarps.Set(32)
		assert.Equal(t, float64(1000), testutil.ToFloat64(BlockThreads))
		assert.Equal(t, float64(32), testutil.ToFloat64(BlockWarps))
	})
}
