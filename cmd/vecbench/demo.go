package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/vec"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the reference vector scenarios",
		Long: `The demo command runs four short scenarios and prints the resulting
sequences with their size and capacity:

  insert     fill [5 5 5 5 5], set index 0 to 0, insert 123 at index 1
  push       push 1, 2, 3 into an empty vector, tracking capacity
  assign     assign [2.3 2112 1.32 -0.22], then the shorter [1 2 0.03333]
  copy-if    copy the doubles whose fractional part is 0.666 (within 0.001)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

// Scenario is the outcome of one demo step.
type Scenario struct {
	Name       string    `json:"name"`
	Values     []float64 `json:"values"`
	Len        int       `json:"len"`
	Capacity   int       `json:"capacity"`
	Cursor     *int      `json:"cursor,omitempty"`
	Capacities []int     `json:"capacities,omitempty"`
}

func snapshot[T int | float64](name string, v *vec.Vector[T]) Scenario {
	vals := make([]float64, v.Len())
	for i, x := range v.All() {
		vals[i] = float64(x)
	}
	return Scenario{
		Name:     name,
		Values:   vals,
		Len:      v.Len(),
		Capacity: v.Cap(),
	}
}

// fractionalNear reports whether x's fractional part is within 0.001 of 0.666.
func fractionalNear(x float64) bool {
	_, frac := math.Modf(x)
	return math.Abs(frac-0.666) < 0.001
}

func scenarios() ([]Scenario, error) {
	var out []Scenario

	filled, err := vec.NewFilled(5, 5)
	if err != nil {
		return nil, err
	}
	if err := filled.Set(0, 0); err != nil {
		return nil, err
	}
	c, err := filled.Insert(filled.Begin().Add(1), 123)
	if err != nil {
		return nil, err
	}
	s := snapshot("insert", filled)
	insertAt := c.Offset()
	s.Cursor = &insertAt
	out = append(out, s)

	var pushed vec.Vector[int]
	caps := []int{pushed.Cap()}
	for _, x := range []int{1, 2, 3} {
		if err := pushed.PushBack(x); err != nil {
			return nil, err
		}
		if pushed.Cap() != caps[len(caps)-1] {
			caps = append(caps, pushed.Cap())
		}
	}
	s = snapshot("push", &pushed)
	s.Capacities = caps
	out = append(out, s)

	var assigned vec.Vector[float64]
	if err := assigned.AssignValues(2.3, 2112, 1.32, -0.22); err != nil {
		return nil, err
	}
	if err := assigned.AssignValues(1, 2, 0.03333); err != nil {
		return nil, err
	}
	out = append(out, snapshot("assign", &assigned))

	doubles, err := vec.FromSlice([]float64{0.666, 1.666, 2.1, 3.32, 4.666, 5.666, 6.123})
	if err != nil {
		return nil, err
	}
	var picked vec.Vector[float64]
	if err := vec.CopyIf(doubles.CBegin(), doubles.CEnd(), &picked, fractionalNear); err != nil {
		return nil, err
	}
	out = append(out, snapshot("copy-if", &picked))

	return out, nil
}

func runDemo() error {
	res, err := scenarios()
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if jsonOut {
		return printJSON(res)
	}
	for _, s := range res {
		line := fmt.Sprintf("%v len=%d cap=%d", s.Values, s.Len, s.Capacity)
		if s.Cursor != nil {
			line += fmt.Sprintf(" cursor=%d", *s.Cursor)
		}
		if len(s.Capacities) > 0 {
			line += fmt.Sprintf(" capacities=%v", s.Capacities)
		}
		printInfo("%s %s\n", styled(headerStyle, fmt.Sprintf("%-7s", s.Name)), line)
	}
	return nil
}
