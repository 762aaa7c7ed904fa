package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaasu2002/go-matching-engine/internal/assignment"
)

func TestLiveMetricsProducer_FeedsManager(t *testing.T) {
	mgr := assignment.NewManager(time.Minute, time.Minute)
	p := NewLiveMetricsProducer(mgr, zap.NewNop())
	p.sleep = func(time.Duration) {} // skip the artificial delay in tests

	csv := "# header comment\n0,TSLA,120,12,8\n\n5,GOOG,50,5,3\n"
	require.NoError(t, p.Run(strings.NewReader(csv)))

	tsla, ok := mgr.State("TSLA")
	require.True(t, ok)
	assert.InDelta(t, 120, tsla.MsgsPerSecEWMA, 0.001)

	_, ok = mgr.State("GOOG")
	require.True(t, ok)
}

func TestLiveMetricsProducer_SkipsMalformedLines(t *testing.T) {
	mgr := assignment.NewManager(time.Minute, time.Minute)
	p := NewLiveMetricsProducer(mgr, zap.NewNop())
	p.sleep = func(time.Duration) {}

	require.NoError(t, p.Run(strings.NewReader("not,enough\n0,TSLA,1,2,3\n")))

	_, ok := mgr.State("TSLA")
	assert.True(t, ok)
}
