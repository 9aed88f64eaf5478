package physics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec2Normalize(t *testing.T) {
	v, ok := Vec2{X: 3, Y: 4}.Normalize()
	require.True(t, ok)
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)

	_, ok = Zero.Normalize()
	assert.False(t, ok)

	_, ok = Vec2{X: math.NaN()}.Normalize()
	assert.False(t, ok)
}

func TestReflectLaw(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		d, ok := Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}.Normalize()
		if !ok {
			continue
		}
		n, ok := Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}.Normalize()
		if !ok {
			continue
		}

		r := d.Reflect(n)
		assert.InDelta(t, -d.Dot(n), r.Dot(n), 1e-12)
		assert.InDelta(t, d.Length(), r.Length(), 1e-12)
	}
}

func TestReflectAxisNormal(t *testing.T) {
	r := Vec2{X: 0.6, Y: -0.8}.Reflect(Vec2{Y: 1})
	assert.Equal(t, Vec2{X: 0.6, Y: 0.8}, r)
}

func TestLerp(t *testing.T) {
	a, b := Vec2{X: 1, Y: 1}, Vec2{X: 3, Y: -1}
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec2{X: 2, Y: 0}, a.Lerp(b, 0.5))
}

func TestBounds(t *testing.T) {
	b := BoundsFromMinMax(Vec2{X: -2, Y: 0}, Vec2{X: 2, Y: 1})
	assert.Equal(t, Vec2{X: 0, Y: 0.5}, b.Center)
	assert.Equal(t, Vec2{X: 2, Y: 0.5}, b.Extents)
	assert.Equal(t, -2.0, b.Left())
	assert.Equal(t, 2.0, b.Right())
	assert.Equal(t, 0.0, b.Bottom())
	assert.Equal(t, 1.0, b.Top())
	assert.True(t, b.Contains(Vec2{X: 2, Y: 1}))
	assert.False(t, b.Contains(Vec2{X: 2.1, Y: 1}))
	assert.Equal(t, 3.0, b.Inflate(1).Right())
	assert.True(t, b.Valid())
	assert.False(t, NewBounds(Zero, Vec2{X: 1}).Valid())

	assert.Equal(t, Vec2{X: 2, Y: 1}, b.ClosestPoint(Vec2{X: 3, Y: 4}))
	assert.Equal(t, Vec2{X: -1, Y: 0}, b.ClosestPoint(Vec2{X: -1, Y: -5}))
	assert.Equal(t, Vec2{X: 0.5, Y: 0.5}, b.ClosestPoint(Vec2{X: 0.5, Y: 0.5}))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Vec2{X: 1, Y: -2}.IsFinite())
	assert.False(t, Vec2{X: math.Inf(1)}.IsFinite())
	assert.False(t, Vec2{Y: math.NaN()}.IsFinite())
}
