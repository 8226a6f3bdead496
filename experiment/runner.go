package experiment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avlseq"
)

// Result is the outcome of one operation in one round.
type Result struct {
	Operation Operation     `yaml:"operation"`
	Round     int           `yaml:"round"` // 1-based
	N         int           `yaml:"n"`
	Ops       int           `yaml:"ops"`  // number of single operations measured
	Cost      int           `yaml:"cost"` // rotations, or height differences for concat
	MaxCost   int           `yaml:"max_cost"`
	Height    int           `yaml:"height"` // final height of the tree
	Elapsed   time.Duration `yaml:"elapsed"`
}

// Average returns the average cost per single operation.
func (r Result) Average() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Cost) / float64(r.Ops)
}

func (r Result) String() string {
	return fmt.Sprintf("%-6s round %2d  n=%-8d cost=%-9d avg=%6.3f max=%-3d h=%d",
		r.Operation, r.Round, r.N, r.Cost, r.Average(), r.MaxCost, r.Height)
}

// Runner executes a plan. Results are broadcast to subscribers as soon as a
// measurement is complete. A runner may be run once.
type Runner struct {
	plan *Plan
	cast *caster.Caster
}

// NewRunner creates a runner for plan.
func NewRunner(plan *Plan) (*Runner, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		plan: plan,
		cast: caster.New(nil),
	}, nil
}

// Steps returns the number of results a run of the plan will produce.
func (r *Runner) Steps() int {
	return len(r.plan.Operations) * r.plan.Rounds
}

// Subscribe returns a channel which receives every result of the run. The
// channel is closed when the run is finished or ctx is done. Clients have to
// subscribe before calling Run.
func (r *Runner) Subscribe(ctx context.Context) (<-chan Result, error) {
	msgs, ok := r.cast.Sub(ctx, uint(r.Steps()))
	if !ok {
		return nil, fmt.Errorf("experiment %q: runner already finished", r.plan.Name)
	}
	results := make(chan Result, r.Steps())
	go func() {
		defer close(results)
		for msg := range msgs {
			results <- msg.(Result)
		}
	}()
	return results, nil
}

// Run executes all operations of the plan for all sizes and returns the
// results in order. If ctx is canceled, Run stops after the current
// measurement and returns the results so far together with ctx's error.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	defer r.cast.Close()
	rnd := rand.New(rand.NewPCG(r.plan.Seed, r.plan.Seed^0x9e3779b97f4a7c15))
	results := make([]Result, 0, r.Steps())
	for _, op := range r.plan.Operations {
		for i, n := range r.plan.Sizes() {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			start := time.Now()
			res, seq := measure(op, n, rnd)
			res.Round, res.Elapsed = i+1, time.Since(start)
			if r.plan.Verify {
				if err := seq.Check(); err != nil {
					tracer().Errorf("experiment %s: %v", op, err)
					return results, fmt.Errorf("%s, n=%d: %w", op, n, err)
				}
			}
			tracer().Infof("experiment %s", res)
			results = append(results, res)
			r.cast.Pub(res)
		}
	}
	return results, nil
}

// measure runs a single measurement and returns its result together with the
// final sequence.
func measure(op Operation, n int, rnd *rand.Rand) (Result, *avlseq.Sequence[int]) {
	res := Result{Operation: op, N: n}
	add := func(cost int) {
		res.Ops++
		res.Cost += cost
		res.MaxCost = max(res.MaxCost, cost)
	}
	var seq *avlseq.Sequence[int]
	switch op {
	case OpInsert:
		seq = randomSequence(n, rnd, add)
	case OpDelete:
		seq = randomSequence(n, rnd, nil)
		for seq.Len() > 0 {
			r, _ := seq.Delete(rnd.IntN(seq.Len()))
			add(r)
		}
	case OpConcat:
		// split n items into random pieces, joining them from left to right
		seq = avlseq.New[int]()
		for rest := n; rest > 0; {
			k := 1 + rnd.IntN(rest)
			piece := make([]int, k)
			for j := range piece {
				piece[j] = n - rest + j
			}
			add(seq.Concat(avlseq.FromSlice(piece...)))
			rest -= k
		}
	case OpMixed:
		seq = randomSequence(n/2, rnd, nil)
		for j := range n {
			if seq.Len() == 0 || rnd.IntN(2) == 0 {
				r, _ := seq.Insert(rnd.IntN(seq.Len()+1), j)
				add(r)
			} else {
				r, _ := seq.Delete(rnd.IntN(seq.Len()))
				add(r)
			}
		}
	}
	res.Height = seq.Height()
	return res, seq
}

// randomSequence inserts n items at random positions into an empty sequence.
// If cost is not nil, it receives the rotation count of every insertion.
func randomSequence(n int, rnd *rand.Rand, cost func(int)) *avlseq.Sequence[int] {
	seq := avlseq.New[int]()
	for j := range n {
		r, _ := seq.Insert(rnd.IntN(j+1), j)
		if cost != nil {
			cost(r)
		}
	}
	return seq
}
