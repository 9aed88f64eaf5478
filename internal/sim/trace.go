package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/circlesweep/internal/core/systems/physics"
)

// Trace fingerprints every step result and optionally keeps them.
type Trace struct {
	keep    bool
	results []physics.StepResult
	digest  *xxhash.Digest
	buf     [8]byte
	count   int
}

func NewTrace(keep bool) *Trace {
	return &Trace{keep: keep, digest: xxhash.New()}
}

// Record folds the exact bit patterns of position, direction and time of
// impact into the digest.
func (t *Trace) Record(res physics.StepResult) {
	for _, f := range [...]float64{
		res.Position.X, res.Position.Y,
		res.Direction.X, res.Direction.Y,
		res.TimeOfImpact,
	} {
		binary.LittleEndian.PutUint64(t.buf[:], math.Float64bits(f))
		_, _ = t.digest.Write(t.buf[:])
	}
	t.count++
	if t.keep {
		t.results = append(t.results, res)
	}
}

func (t *Trace) Len() int { return t.count }

// Results returns the kept step results; empty unless the trace keeps them.
func (t *Trace) Results() []physics.StepResult { return t.results }

func (t *Trace) Digest() uint64 { return t.digest.Sum64() }
