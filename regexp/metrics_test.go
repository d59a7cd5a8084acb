package regexp

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	m, _ := newTestMatcher(t)

	_, _ = m.Matches(`\d+`, "1")
	_, _ = m.Matches(`\d+`, "2")
	_, _ = m.Matches(`[`, "3")

	c := NewCollector(m, prometheus.Labels{"matcher": "test"})

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	assert.Equal(t, 5, testutil.CollectAndCount(c))

	expected := `
# HELP regexmatch_cache_compilations_total Patterns handed to the engine for compilation.
# TYPE regexmatch_cache_compilations_total counter
regexmatch_cache_compilations_total{matcher="test"} 2
# HELP regexmatch_cache_compile_failures_total Patterns that failed to compile.
# TYPE regexmatch_cache_compile_failures_total counter
regexmatch_cache_compile_failures_total{matcher="test"} 1
# HELP regexmatch_cache_entries Compiled patterns currently cached.
# TYPE regexmatch_cache_entries gauge
regexmatch_cache_entries{matcher="test"} 1
# HELP regexmatch_cache_hits_total Pattern lookups served from the cache.
# TYPE regexmatch_cache_hits_total counter
regexmatch_cache_hits_total{matcher="test"} 1
# HELP regexmatch_cache_misses_total Pattern lookups not found in the cache.
# TYPE regexmatch_cache_misses_total counter
regexmatch_cache_misses_total{matcher="test"} 2
`

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}
