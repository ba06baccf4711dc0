package ductnoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCircularUnlinedAttenuationBracket(t *testing.T) {
	s := CircularUnlinedAttenuation(5, 10)
	assert.Equal(t, 0.3, s[BandIndex(63)])  // d<=7 bracket, 0.03/ft * 10ft
	assert.Equal(t, 0.0, s[BandIndex(8000)])
}

func TestCircularUnlinedAttenuationSaturatesAboveRange(t *testing.T) {
	in := CircularUnlinedAttenuation(55, 1)
	over := CircularUnlinedAttenuation(500, 1)
	assert.Equal(t, in, over)
}

func TestCircularLinedInsertionLossCapAndFloor(t *testing.T) {
	s := CircularLinedInsertionLoss(6, 2, 1000)
	for _, v := range s {
		assert.LessOrEqual(t, v, 40.0)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestCircularLinedInsertionLossMonotonicInLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.Float64Range(6, 60).Draw(t, "diameter")
		th := rapid.Float64Range(1, 3).Draw(t, "thickness")
		l1 := rapid.Float64Range(1, 10).Draw(t, "length1")
		l2 := l1 + rapid.Float64Range(0, 10).Draw(t, "extra")

		s1 := CircularLinedInsertionLoss(d, th, l1)
		s2 := CircularLinedInsertionLoss(d, th, l2)
		for i := range s1 {
			// Capping at 40 means longer length is never less, but can tie.
			assert.GreaterOrEqual(t, s2[i], s1[i]-1e-9)
		}
	})
}

func TestClampCircularDiameter(t *testing.T) {
	v, clamped := ClampCircularDiameter(3)
	assert.Equal(t, 6.0, v)
	assert.True(t, clamped)

	v, clamped = ClampCircularDiameter(80)
	assert.Equal(t, 60.0, v)
	assert.True(t, clamped)

	v, clamped = ClampCircularDiameter(20)
	assert.Equal(t, 20.0, v)
	assert.False(t, clamped)
}

func TestClampLiningThickness(t *testing.T) {
	v, clamped := ClampLiningThickness(0.5)
	assert.Equal(t, 1.0, v)
	assert.True(t, clamped)

	v, clamped = ClampLiningThickness(4)
	assert.Equal(t, 3.0, v)
	assert.True(t, clamped)
}
