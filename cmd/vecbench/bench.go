package main

import (
	"encoding/json"
	"fmt"
	"time"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/internal/writer"
	"github.com/joshuapare/veckit/vec"
	"github.com/joshuapare/veckit/vec/alloc"
)

var (
	benchRounds    int
	benchCount     int
	benchAllocator string
	benchKinds     []string
	benchOutput    string
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchRounds, "rounds", 10, "Fill/clear rounds per element kind")
	cmd.Flags().IntVar(&benchCount, "count", 10_000_000, "Elements appended per round")
	cmd.Flags().StringVar(&benchAllocator, "allocator", "heap", "Allocator: heap, pool or mmap")
	cmd.Flags().StringSliceVar(&benchKinds, "kind", []string{kindPlain, kindTracked}, "Element kinds to run")
	cmd.Flags().StringVarP(&benchOutput, "output", "o", "", "Also write the JSON results to this file")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time EmplaceBack for each element kind",
		Long: `The bench command appends --count default-constructed elements to one
vector and clears it, --rounds times, for each element kind:

  plain    relocated as whole blocks with a single copy
  tracked  records its own address, so every relocation runs move hooks

Example:
  vecbench bench
  vecbench bench --count 1000000 --allocator pool
  vecbench bench --kind tracked --json
  vecbench bench --count 1000000 -o results.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
	return cmd
}

const (
	kindPlain   = "plain"
	kindTracked = "tracked"
)

// plain has no hooks and no pointers.
type plain struct {
	a int32
	b uint64
}

// tracked stores its own address like a self-referencing object would, and
// refreshes it in every construction hook. It holds no Go pointers so it can
// live in mapped memory.
type tracked struct {
	data int
	addr uintptr
}

func (t *tracked) Init() error {
	t.data, t.addr = 0, uintptr(unsafe.Pointer(t))
	return nil
}

func (t *tracked) CopyFrom(src *tracked) error {
	t.data, t.addr = src.data, uintptr(unsafe.Pointer(t))
	return nil
}

func (t *tracked) MoveFrom(src *tracked) {
	t.data, t.addr = src.data, uintptr(unsafe.Pointer(t))
}

// BenchResult is one timed run.
type BenchResult struct {
	Kind      string        `json:"kind"`
	Allocator string        `json:"allocator"`
	Rounds    int           `json:"rounds"`
	Count     int           `json:"count"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Capacity  int           `json:"capacity"`
}

func runBench() error {
	if benchRounds < 1 || benchCount < 0 {
		return fmt.Errorf("rounds must be positive and count non-negative")
	}

	var results []BenchResult
	for _, kind := range benchKinds {
		var (
			res BenchResult
			err error
		)
		switch kind {
		case kindPlain:
			res, err = benchKind[plain](kind, benchAllocator, benchRounds, benchCount)
		case kindTracked:
			res, err = benchKind[tracked](kind, benchAllocator, benchRounds, benchCount)
		default:
			return fmt.Errorf("unknown element kind %q", kind)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		results = append(results, res)
	}

	if benchOutput != "" {
		if err := saveResults(&writer.FileWriter{Path: benchOutput}, results); err != nil {
			return err
		}
		printVerbose("Results written to %s\n", benchOutput)
	}
	if jsonOut {
		return printJSON(results)
	}
	printInfo("%s\n", styled(headerStyle, "EmplaceBack benchmark"))
	for _, r := range results {
		printInfo("%-8s %s  %d x %d elements  %s  capacity %d\n",
			r.Kind,
			styled(mutedStyle, r.Allocator),
			r.Rounds, r.Count,
			styled(valueStyle, fmt.Sprintf("%.3f s", r.Elapsed.Seconds())),
			r.Capacity)
	}
	return nil
}

// saveResults encodes results as indented JSON into sink.
func saveResults(sink writer.Sink, results []BenchResult) error {
	buf, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := sink.WriteReport(append(buf, '\n')); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// benchKind runs the fill/clear loop for element type T on the named allocator.
func benchKind[T any](kind, allocName string, rounds, count int) (BenchResult, error) {
	a, closeFn, err := newAllocator[T](allocName)
	if err != nil {
		return BenchResult{}, err
	}
	defer func() {
		if err := closeFn(); err != nil {
			logger.Warn("close allocator", "allocator", allocName, "error", err)
		}
	}()

	v := vec.New(vec.WithAllocator(a))
	start := time.Now()
	for range rounds {
		for range count {
			if _, err := v.EmplaceBack(nil); err != nil {
				return BenchResult{}, err
			}
		}
		v.Clear()
	}
	elapsed := time.Since(start)
	capacity := v.Cap()
	v.Release()

	logger.Debug("bench done", "kind", kind, "allocator", allocName, "elapsed", elapsed)
	printVerbose("%s on %s finished in %s\n", kind, allocName, elapsed)

	return BenchResult{
		Kind:      kind,
		Allocator: allocName,
		Rounds:    rounds,
		Count:     count,
		Elapsed:   elapsed,
		Capacity:  capacity,
	}, nil
}

// newAllocator builds the allocator named on the command line together with
// the function that releases it.
func newAllocator[T any](name string) (alloc.Allocator[T], func() error, error) {
	nop := func() error { return nil }
	switch name {
	case "heap":
		return alloc.Heap[T]{}, nop, nil
	case "pool":
		p := alloc.NewPool[T]()
		drain := func() error {
			p.Drain()
			return nil
		}
		return p, drain, nil
	case "mmap":
		m, err := alloc.NewMmap[T]()
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown allocator %q (want heap, pool or mmap)", name)
	}
}
