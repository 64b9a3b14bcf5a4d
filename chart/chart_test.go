package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champsim-tools/traceplot/report"
	"github.com/champsim-tools/traceplot/simlog"
)

func sampleTable() *report.MetricTable {
	metrics := func(ipc, l1d, l2, llc float64) simlog.Metrics {
		return simlog.Metrics{
			simlog.MetricIPC:     ipc,
			simlog.MetricL1DMPKI: l1d,
			simlog.MetricL2MPKI:  l2,
			simlog.MetricLLCMPKI: llc,
		}
	}
	baseline := []simlog.TraceResult{
		{Trace: 1, Policy: "noninclusive", Metrics: metrics(1.5, 2.0, 1.2, 0.8)},
		{Trace: 2, Policy: "noninclusive", Metrics: metrics(0.9, 4.1, 2.2, 1.4)},
	}
	comparison := []simlog.TraceResult{
		{Trace: 1, Policy: "exclusive", Metrics: metrics(1.8, 1.9, 1.0, 0.7)},
		{Trace: 3, Policy: "exclusive", Metrics: metrics(1.1, 3.0, math.NaN(), 1.0)},
	}
	table := report.Join(baseline, comparison, "noninclusive", "exclusive")
	table.AddSpeedup()
	return table
}

func TestRenderMetric_WritesArtifact(t *testing.T) {
	dir := t.TempDir()
	table := sampleTable()

	for _, metric := range simlog.MetricOrder {
		path, err := RenderMetric(table, metric, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, metric+".png"), path)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRenderSpeedup_WritesArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	path, err := RenderSpeedup(sampleTable(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SpeedupFile), path)

	_, err = os.Stat(path)
	assert.NoError(t, err, "output directory should be created on demand")
}

func TestRenderTable_WritesArtifact(t *testing.T) {
	dir := t.TempDir()
	path, err := RenderTable(sampleTable(), "Per-trace metrics", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRender_OverwritesIdempotently(t *testing.T) {
	dir := t.TempDir()
	table := sampleTable()

	_, err := RenderSpeedup(table, dir)
	require.NoError(t, err)
	_, err = RenderSpeedup(table, dir)
	require.NoError(t, err)
}

func TestRender_EmptyTable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	empty := &report.MetricTable{BaselineLabel: "b", ComparisonLabel: "c"}

	_, err := RenderMetric(empty, simlog.MetricIPC, dir)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = RenderSpeedup(empty, dir)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = RenderTable(empty, "t", dir)
	assert.ErrorIs(t, err, ErrNoData)

	// Nothing may be written for an empty table, not even the directory.
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
