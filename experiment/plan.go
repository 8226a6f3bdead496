/*
Package experiment measures the re-balancing cost of sequence operations.

An experiment is described by a Plan: for a series of sizes n = base·2^i,
i = 1…rounds, each of the plan's operations is run against a sequence of n
items, and the total cost is reported. Cost is counted in rotations for
insertions and deletions, and in height differences for concatenations.

Plans are YAML documents, e.g.

	name: rotations
	seed: 42
	base: 1000
	rounds: 5
	operations: [insert, delete, concat, mixed]
	verify: true

Results of every round are broadcast to subscribers while the experiment
is running, which lets clients display progress.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package experiment

import (
	"fmt"
	"os"

	"github.com/npillmayer/avlseq"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'avlseq'
func tracer() tracing.Trace {
	return tracing.Select("avlseq")
}

// Operation names a kind of measurement.
type Operation string

// Operations which may be part of a plan.
const (
	OpInsert Operation = "insert" // n insertions at random positions into an empty sequence
	OpDelete Operation = "delete" // n deletions at random positions until the sequence is empty
	OpConcat Operation = "concat" // concatenations of random splits of n items
	OpMixed  Operation = "mixed"  // n random insertions and deletions on n/2 items
)

func (op Operation) valid() bool {
	switch op {
	case OpInsert, OpDelete, OpConcat, OpMixed:
		return true
	}
	return false
}

// Plan describes an experiment.
type Plan struct {
	Name       string      `yaml:"name"`
	Seed       uint64      `yaml:"seed"`
	Base       int         `yaml:"base"`
	Rounds     int         `yaml:"rounds"`
	Operations []Operation `yaml:"operations"`
	Verify     bool        `yaml:"verify"` // check tree invariants after every round
}

// DefaultPlan is used by clients which do not provide a plan of their own.
var DefaultPlan = Plan{
	Name:       "rotations",
	Seed:       1,
	Base:       1000,
	Rounds:     5,
	Operations: []Operation{OpInsert, OpDelete, OpConcat, OpMixed},
}

// ParsePlan reads a plan from a YAML document. Missing settings are taken
// from DefaultPlan.
func ParsePlan(data []byte) (*Plan, error) {
	plan := DefaultPlan
	plan.Operations = nil
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing experiment plan: %w", err)
	}
	if len(plan.Operations) == 0 {
		plan.Operations = DefaultPlan.Operations
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// LoadPlan reads a plan from a YAML file.
func LoadPlan(name string) (*Plan, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data)
}

// Validate checks the settings of a plan.
func (p *Plan) Validate() error {
	if p == nil {
		return avlseq.ErrIllegalArguments
	}
	if p.Base <= 0 || p.Rounds <= 0 {
		return fmt.Errorf("%w: plan needs positive base and rounds, has %d and %d",
			avlseq.ErrIllegalArguments, p.Base, p.Rounds)
	}
	if p.Base<<p.Rounds <= 0 || p.Rounds > 30 {
		return fmt.Errorf("%w: %d rounds on base %d are too many",
			avlseq.ErrIllegalArguments, p.Rounds, p.Base)
	}
	for _, op := range p.Operations {
		if !op.valid() {
			return fmt.Errorf("%w: unknown operation %q", avlseq.ErrIllegalArguments, op)
		}
	}
	return nil
}

// Sizes returns the sequence sizes of all rounds, base·2^i for i = 1…rounds.
func (p *Plan) Sizes() []int {
	sizes := make([]int, p.Rounds)
	for i := range sizes {
		sizes[i] = p.Base << (i + 1)
	}
	return sizes
}

// Marshal returns the plan as a YAML document.
func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
