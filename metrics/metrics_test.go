package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvminor/metrics"
)

func TestCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.ObserveTick(false)
	c.ObserveTick(false)
	c.ObserveTick(true)
	c.ObserveSettle()
	c.SetActive(3)
	c.ObservePush(1, 3)
	c.ObserveBranch()
	c.ObserveRevert(true, 0, 1)
	c.ObserveRevert(false, 0, 1)

	require.Equal(t, 2.0, testutil.ToFloat64(c.Ticks.WithLabelValues("moving")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Ticks.WithLabelValues("settled")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Settles))
	require.Equal(t, 3.0, testutil.ToFloat64(c.Active))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Pushes))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Branches))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Reverts.WithLabelValues("applied")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Reverts.WithLabelValues("noop")))
	require.Equal(t, 0.0, testutil.ToFloat64(c.Depth))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Live))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 10, n)
}

func TestNew_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestNilCollectors(t *testing.T) {
	var c *metrics.Collectors
	require.NotPanics(t, func() {
		c.ObserveTick(true)
		c.ObserveSettle()
		c.SetActive(1)
		c.ObservePush(1, 1)
		c.ObserveRevert(true, 0, 1)
		c.ObserveBranch()
	})

	unregistered, err := metrics.New(nil)
	require.NoError(t, err)
	unregistered.ObservePush(2, 4)
	require.Equal(t, 2.0, testutil.ToFloat64(unregistered.Depth))
}
