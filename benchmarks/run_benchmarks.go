// Package main runs the ULID benchmarks and outputs results to JSON/Markdown.
// Run with: go run benchmarks/run_benchmarks.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BenchmarkResults holds all benchmark data
type BenchmarkResults struct {
	Timestamp       string                    `json:"timestamp"`
	Environment     Environment               `json:"environment"`
	Implementations map[string]Implementation `json:"implementations"`
	Summary         []Comparison              `json:"summary"`
}

type Environment struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPU       string `json:"cpu"`
	NumCPU    int    `json:"num_cpu"`
	GoVersion string `json:"go_version"`
}

// Implementation groups the benchmarks of one identifier library.
type Implementation struct {
	Benchmarks []Benchmark `json:"benchmarks"`
}

type Benchmark struct {
	Name        string  `json:"name"`
	NsPerOp     float64 `json:"ns_per_op"`
	OpsPerSec   float64 `json:"ops_per_sec"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
}

// Comparison lines up the same workload across implementations.
type Comparison struct {
	Workload string             `json:"workload"`
	NsPerOp  map[string]float64 `json:"ns_per_op"`
}

// implementationPrefixes maps a benchmark name prefix to the library it
// measures. Benchmarks without a known prefix measure ulidgen itself.
var implementationPrefixes = map[string]string{
	"BenchmarkOklog_":  "oklog",
	"BenchmarkKSUID_":  "ksuid",
	"BenchmarkUUIDv7_": "uuid",
	"BenchmarkUUIDv4_": "uuid",
}

// workloads names the benchmark that stands for each workload per library.
var workloads = []struct {
	name  string
	bench map[string]string
}{
	{"generate and stringify", map[string]string{
		"ulidgen": "BenchmarkGenerateString",
		"oklog":   "BenchmarkOklog_MakeString",
		"ksuid":   "BenchmarkKSUID_NewString",
		"uuid":    "BenchmarkUUIDv7_NewString",
	}},
	{"stringify", map[string]string{
		"ulidgen": "BenchmarkString",
		"oklog":   "BenchmarkOklog_String",
		"ksuid":   "BenchmarkKSUID_String",
		"uuid":    "BenchmarkUUIDv4_String",
	}},
	{"parse", map[string]string{
		"ulidgen": "BenchmarkParse",
		"oklog":   "BenchmarkOklog_Parse",
		"ksuid":   "BenchmarkKSUID_Parse",
	}},
}

func main() {
	fmt.Println("==========================================")
	fmt.Println("   ULIDGEN BENCHMARK SUITE")
	fmt.Println("==========================================")
	fmt.Println()

	results := BenchmarkResults{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Environment: Environment{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			CPU:       getCPUInfo(),
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
		},
	}

	fmt.Println("Running ./pkg/ulid/ benchmarks...")
	out, err := runBenchmarks(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: go test failed: %v\n%s", err, out)
		os.Exit(1)
	}

	results.Implementations = groupByImplementation(parseBenchmarkOutput(out))
	results.Summary = summarize(results.Implementations)

	if err := os.MkdirAll("benchmarks/results", 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	jsonPath := filepath.Join("benchmarks", "results", "results.json")
	if err := writeJSON(results, jsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", jsonPath, err)
		os.Exit(1)
	}
	fmt.Printf("\nJSON results: %s\n", jsonPath)

	mdPath := filepath.Join("benchmarks", "results", "results.md")
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(results)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", mdPath, err)
		os.Exit(1)
	}
	fmt.Printf("Markdown results: %s\n", mdPath)

	printSummary(results)
}

func getCPUInfo() string {
	if runtime.GOOS == "linux" {
		data, err := os.ReadFile("/proc/cpuinfo")
		if err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				if strings.HasPrefix(line, "model name") {
					parts := strings.SplitN(line, ":", 2)
					if len(parts) == 2 {
						return strings.TrimSpace(parts[1])
					}
				}
			}
		}
	}
	return "unknown"
}

func runBenchmarks(pattern string) (string, error) {
	cmd := exec.Command("go", "test", "-run=^$", "-bench="+pattern, "-benchtime=1s", "-benchmem", "./pkg/ulid/")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// Pattern: BenchmarkName-N    iterations    ns/op    bytes/op    allocs/op
var benchLine = regexp.MustCompile(`(Benchmark[\w/]+?)(?:-\d+)?\s+(\d+)\s+([\d.]+)\s+ns/op\s+(\d+)\s+B/op\s+(\d+)\s+allocs/op`)

func parseBenchmarkOutput(output string) []Benchmark {
	var benchmarks []Benchmark

	for _, match := range benchLine.FindAllStringSubmatch(output, -1) {
		nsPerOp, _ := strconv.ParseFloat(match[3], 64)
		bytesPerOp, _ := strconv.ParseInt(match[4], 10, 64)
		allocsPerOp, _ := strconv.ParseInt(match[5], 10, 64)

		opsPerSec := 0.0
		if nsPerOp > 0 {
			opsPerSec = 1e9 / nsPerOp
		}

		benchmarks = append(benchmarks, Benchmark{
			Name:        match[1],
			NsPerOp:     nsPerOp,
			OpsPerSec:   opsPerSec,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return benchmarks
}

func implementationOf(name string) string {
	for prefix, impl := range implementationPrefixes {
		if strings.HasPrefix(name, prefix) {
			return impl
		}
	}
	return "ulidgen"
}

func groupByImplementation(benchmarks []Benchmark) map[string]Implementation {
	groups := make(map[string]Implementation)
	for _, b := range benchmarks {
		impl := implementationOf(b.Name)
		g := groups[impl]
		g.Benchmarks = append(g.Benchmarks, b)
		groups[impl] = g
	}
	return groups
}

func summarize(impls map[string]Implementation) []Comparison {
	byName := make(map[string]float64)
	for _, impl := range impls {
		for _, b := range impl.Benchmarks {
			byName[b.Name] = b.NsPerOp
		}
	}

	var summary []Comparison
	for _, w := range workloads {
		c := Comparison{Workload: w.name, NsPerOp: make(map[string]float64)}
		for impl, bench := range w.bench {
			if ns, ok := byName[bench]; ok {
				c.NsPerOp[impl] = ns
			}
		}
		if len(c.NsPerOp) > 0 {
			summary = append(summary, c)
		}
	}
	return summary
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func writeJSON(results BenchmarkResults, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func renderMarkdown(results BenchmarkResults) string {
	var sb strings.Builder
	title := cases.Title(language.English)

	sb.WriteString("# ulidgen Benchmark Results\n\n")
	fmt.Fprintf(&sb, "**Generated**: %s\n\n", results.Timestamp)
	sb.WriteString("## Environment\n\n")
	fmt.Fprintf(&sb, "- **OS**: %s/%s\n", results.Environment.OS, results.Environment.Arch)
	fmt.Fprintf(&sb, "- **CPU**: %s (%d cores)\n", results.Environment.CPU, results.Environment.NumCPU)
	fmt.Fprintf(&sb, "- **Go**: %s\n\n", results.Environment.GoVersion)

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Workload | Implementation | ns/op |\n")
	sb.WriteString("|----------|----------------|-------|\n")
	for _, c := range results.Summary {
		for _, impl := range sortedKeys(c.NsPerOp) {
			fmt.Fprintf(&sb, "| %s | %s | %.1f |\n", title.String(c.Workload), impl, c.NsPerOp[impl])
		}
	}
	sb.WriteString("\n")

	// Detailed results per implementation
	for _, name := range sortedKeys(results.Implementations) {
		fmt.Fprintf(&sb, "## %s\n\n", title.String(name))
		sb.WriteString("| Benchmark | ops/sec | ns/op | B/op | allocs/op |\n")
		sb.WriteString("|-----------|---------|-------|------|-----------|\n")
		for _, b := range results.Implementations[name].Benchmarks {
			fmt.Fprintf(&sb, "| %s | %.0f | %.1f | %d | %d |\n",
				b.Name, b.OpsPerSec, b.NsPerOp, b.BytesPerOp, b.AllocsPerOp)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Reproducing\n\n")
	sb.WriteString("```bash\n")
	sb.WriteString("go run benchmarks/run_benchmarks.go\n")
	sb.WriteString("# Or directly:\n")
	sb.WriteString("go test -run='^$' -bench=. -benchmem ./pkg/ulid/\n")
	sb.WriteString("```\n")

	return sb.String()
}

func printSummary(results BenchmarkResults) {
	fmt.Println()
	fmt.Println("==========================================")
	fmt.Println("              SUMMARY")
	fmt.Println("==========================================")
	for _, c := range results.Summary {
		fmt.Printf("%s:\n", c.Workload)
		for _, impl := range sortedKeys(c.NsPerOp) {
			fmt.Printf("  %-8s %10.1f ns/op\n", impl, c.NsPerOp[impl])
		}
	}
	fmt.Println("==========================================")
}
