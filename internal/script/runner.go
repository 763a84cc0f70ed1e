package script

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-listadt/listadt"
)

// Snapshot is an immutable copy of the working list taken by a freeze step.
type Snapshot struct {
	Name string                     `json:"name" yaml:"name"`
	List *listadt.Immutable[string] `json:"list" yaml:"list"`
}

// Read records the value observed by a get step.
type Read struct {
	Step  int    `json:"step" yaml:"step"`
	Index int    `json:"index" yaml:"index"`
	Value string `json:"value" yaml:"value"`
}

// Result is the outcome of running a script.
type Result struct {
	// Final is an immutable copy of the working list after the last step.
	Final *listadt.Immutable[string] `json:"final" yaml:"final"`

	// Snapshots in the order they were frozen. Freezing an existing name
	// replaces its list in place.
	Snapshots []Snapshot `json:"snapshots" yaml:"snapshots"`

	// Reads holds one entry per successful get step.
	Reads []Read `json:"reads" yaml:"reads"`

	// Skipped counts steps that failed with an out-of-range index in
	// non-strict mode.
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Runner executes scripts.
type Runner struct {
	cfg Config
	log zerolog.Logger
}

// NewRunner returns a Runner that logs to log.
func NewRunner(cfg Config, log zerolog.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		log: log.With().Str("component", "script").Logger(),
	}
}

// state is the mutable part of a single run.
type state struct {
	work  *listadt.Mutable[string]
	snaps map[string]int
	res   Result
}

// Run executes s and returns its result. In strict mode the first step with
// an out-of-range index aborts the run; otherwise it is logged and skipped.
// Unknown ops, converters and snapshots always abort.
func (r *Runner) Run(s *Script) (*Result, error) {
	st := &state{
		work:  listadt.MutableOf(s.Initial...),
		snaps: make(map[string]int),
	}
	r.log.Debug().Int("initial", st.work.Size()).Int("steps", len(s.Steps)).Msg("running script")

	for i, step := range s.Steps {
		n := i + 1
		err := r.apply(st, n, step)
		if err == nil {
			r.log.Debug().Int("step", n).Str("op", step.Op).Int("size", st.work.Size()).Send()
			continue
		}
		if errors.Is(err, listadt.ErrIndexOutOfRange) && !r.cfg.Strict {
			r.log.Warn().Err(err).Int("step", n).Str("op", step.Op).Msg("step skipped")
			st.res.Skipped++
			continue
		}
		return nil, fmt.Errorf("step %d (%s): %w", n, step.Op, err)
	}

	st.res.Final = st.work.ToImmutable()
	r.log.Info().
		Int("size", st.res.Final.Size()).
		Int("snapshots", len(st.res.Snapshots)).
		Int("skipped", st.res.Skipped).
		Msg("script finished")
	return &st.res, nil
}

func (r *Runner) apply(st *state, n int, step Step) error {
	if err := step.check(); err != nil {
		return err
	}
	switch step.Op {
	case OpAddFront:
		st.work.AddFront(step.Value)
	case OpAddBack:
		st.work.AddBack(step.Value)
	case OpAdd:
		return st.work.Add(*step.Index, step.Value)
	case OpRemove:
		if !st.work.Remove(step.Value) {
			r.log.Debug().Int("step", n).Str("value", step.Value).Msg("remove: no match")
		}
	case OpGet:
		v, err := st.work.Get(*step.Index)
		if err != nil {
			return err
		}
		st.res.Reads = append(st.res.Reads, Read{Step: n, Index: *step.Index, Value: v})
	case OpMap:
		st.work = listadt.MapMutable(st.work, converters[step.Func])
	case OpFreeze:
		snap := Snapshot{Name: step.Name, List: st.work.ToImmutable()}
		if at, ok := st.snaps[step.Name]; ok {
			st.res.Snapshots[at] = snap
			break
		}
		st.snaps[step.Name] = len(st.res.Snapshots)
		st.res.Snapshots = append(st.res.Snapshots, snap)
	case OpThaw:
		at, ok := st.snaps[step.Name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSnapshot, step.Name)
		}
		st.work = st.res.Snapshots[at].List.ToMutable()
	}
	return nil
}
