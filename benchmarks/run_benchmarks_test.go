package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `goos: linux
goarch: amd64
pkg: github.com/getmockd/ulidgen/pkg/ulid
BenchmarkGenerateString-8     	18034521	        66.31 ns/op	      32 B/op	       1 allocs/op
BenchmarkParse-8              	100000000	        10.52 ns/op	       0 B/op	       0 allocs/op
BenchmarkOklog_MakeString-8   	 4410223	       270.4 ns/op	      32 B/op	       1 allocs/op
BenchmarkOklog_Parse-8        	63516990	        18.70 ns/op	       0 B/op	       0 allocs/op
BenchmarkKSUID_NewString-8    	 2953440	       405.0 ns/op	      64 B/op	       2 allocs/op
BenchmarkUUIDv7_NewString-8   	 3712846	       322.9 ns/op	      64 B/op	       2 allocs/op
PASS
ok  	github.com/getmockd/ulidgen/pkg/ulid	9.120s
`

func TestParseBenchmarkOutput(t *testing.T) {
	benchmarks := parseBenchmarkOutput(sampleOutput)
	require.Len(t, benchmarks, 6)

	b := benchmarks[0]
	assert.Equal(t, "BenchmarkGenerateString", b.Name)
	assert.InDelta(t, 66.31, b.NsPerOp, 1e-9)
	assert.InDelta(t, 1e9/66.31, b.OpsPerSec, 1e-3)
	assert.Equal(t, int64(32), b.BytesPerOp)
	assert.Equal(t, int64(1), b.AllocsPerOp)
}

func TestGroupByImplementation(t *testing.T) {
	groups := groupByImplementation(parseBenchmarkOutput(sampleOutput))

	assert.Equal(t, []string{"ksuid", "oklog", "ulidgen", "uuid"}, sortedKeys(groups))
	assert.Len(t, groups["ulidgen"].Benchmarks, 2)
	assert.Len(t, groups["oklog"].Benchmarks, 2)
}

func TestSummarize(t *testing.T) {
	summary := summarize(groupByImplementation(parseBenchmarkOutput(sampleOutput)))
	require.Len(t, summary, 2)

	assert.Equal(t, "generate and stringify", summary[0].Workload)
	assert.Equal(t, map[string]float64{
		"ulidgen": 66.31,
		"oklog":   270.4,
		"ksuid":   405.0,
		"uuid":    322.9,
	}, summary[0].NsPerOp)

	assert.Equal(t, "parse", summary[1].Workload)
	assert.Len(t, summary[1].NsPerOp, 2)
}

func TestRenderMarkdown(t *testing.T) {
	impls := groupByImplementation(parseBenchmarkOutput(sampleOutput))
	md := renderMarkdown(BenchmarkResults{
		Timestamp:       "2026-01-01T00:00:00Z",
		Environment:     Environment{OS: "linux", Arch: "amd64", CPU: "test", NumCPU: 8, GoVersion: "go1.26"},
		Implementations: impls,
		Summary:         summarize(impls),
	})

	assert.Contains(t, md, "| Generate And Stringify | ulidgen | 66.3 |")
	assert.Contains(t, md, "## Oklog\n")
	assert.Contains(t, md, "## Ulidgen\n")
	assert.Less(t, strings.Index(md, "## Ksuid"), strings.Index(md, "## Ulidgen"))
}
