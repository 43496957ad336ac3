package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string // EmplaceBack, InsertFront, ...
	Variant     string // Int, IntPool, RecordMoved, ...
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

// benchmarkRegex matches lines like
// BenchmarkEmplaceBack_IntPool-8    1234    95012 ns/op    0 B/op    0 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^Benchmark([A-Za-z0-9]+)(?:_(\S+?))?(?:-\d+)?\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	report := generateMarkdownReport(results)
	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult
	for scanner.Scan() {
		line := scanner.Text()

		// go test -json wraps each line in an event
		var event map[string]any
		if err := json.Unmarshal([]byte(line), &event); err == nil {
			if output, ok := event["Output"].(string); ok {
				line = output
			}
		}

		m := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		r := BenchmarkResult{
			Name:      strings.Fields(strings.TrimSpace(line))[0],
			Operation: m[1],
			Variant:   m[2],
		}
		r.Iterations, _ = strconv.Atoi(m[3])
		r.NsPerOp, _ = strconv.ParseFloat(m[4], 64)
		if m[5] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(m[5], 10, 64)
		}
		if m[6] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(m[6], 10, 64)
		}
		if r.Variant == "" {
			r.Variant = "default"
		}
		results = append(results, r)
	}
	return results
}

// generateMarkdownReport renders one table per operation, fastest variant
// first, with each variant's slowdown relative to the fastest.
func generateMarkdownReport(results []BenchmarkResult) string {
	byOp := make(map[string][]BenchmarkResult)
	for _, r := range results {
		byOp[r.Operation] = append(byOp[r.Operation], r)
	}
	ops := make([]string, 0, len(byOp))
	for op := range byOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	var sb strings.Builder
	sb.WriteString("# veckit benchmark report\n\n")
	if len(results) == 0 {
		sb.WriteString("No benchmark results found.\n")
		return sb.String()
	}

	for _, op := range ops {
		rows := byOp[op]
		sort.Slice(rows, func(i, j int) bool { return rows[i].NsPerOp < rows[j].NsPerOp })
		fastest := rows[0].NsPerOp

		fmt.Fprintf(&sb, "## %s\n\n", op)
		sb.WriteString("| Variant | ns/op | vs fastest | B/op | allocs/op |\n")
		sb.WriteString("|---------|------:|-----------:|-----:|----------:|\n")
		for _, r := range rows {
			ratio := 1.0
			if fastest > 0 {
				ratio = r.NsPerOp / fastest
			}
			fmt.Fprintf(&sb, "| %s | %s | %.2fx | %d | %d |\n",
				r.Variant, formatNs(r.NsPerOp), ratio, r.BytesPerOp, r.AllocsPerOp)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatNs(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.2fs", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.2fms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2fµs", ns/1e3)
	default:
		return fmt.Sprintf("%.0fns", ns)
	}
}
