package ductnoise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBandIndex(t *testing.T) {
	assert.Equal(t, 0, BandIndex(63))
	assert.Equal(t, 7, BandIndex(8000))
	assert.Equal(t, -1, BandIndex(100))
}

func TestEnergySumBand(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"both zero", 0, 0, 0},
		{"one negative", -5, 0, 0},
		{"equal levels add 3dB", 60, 60, 63.0103},
		{"dominant swamps quiet", 70, 10, 70},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, energySumBand(c.a, c.b), 1e-3)
		})
	}
}

func TestEnergySumCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genSpectrum(t)
		b := genSpectrum(t)
		ab := EnergySum(a, b)
		ba := EnergySum(b, a)
		for i := range ab {
			assert.InDelta(t, ab[i], ba[i], 1e-6)
		}
	})
}

func TestEnergySumAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genSpectrum(t)
		b := genSpectrum(t)
		c := genSpectrum(t)
		left := EnergySum(EnergySum(a, b), c)
		right := EnergySum(a, EnergySum(b, c))
		for i := range left {
			assert.InDelta(t, left[i], right[i], 1e-6)
		}
	})
}

func TestSubtractAttenuationFloorsAtZero(t *testing.T) {
	var s Spectrum
	for i := range s {
		s[i] = 10
	}
	var att Spectrum
	for i := range att {
		att[i] = 50
	}
	out := SubtractAttenuation(s, att)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestSubtractAttenuationNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genSpectrum(t)
		att := genSpectrum(t)
		out := SubtractAttenuation(s, att)
		for _, v := range out {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	})
}

func TestEstimateSpectrumShape(t *testing.T) {
	s := EstimateSpectrum(50)
	require.Equal(t, 51.0, s[4]) // 1000 Hz band, shape offset +1
	assert.Equal(t, 48.0, s[1])  // 125 Hz, shape offset -2
	assert.Equal(t, 52.0, s[5])  // 2000 Hz, shape offset +2
}

func TestEstimateSpectrumNeverNegative(t *testing.T) {
	s := EstimateSpectrum(0)
	for _, v := range s {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestDBAFlatSpectrumDominatedByMidBands(t *testing.T) {
	var s Spectrum
	for i := range s {
		s[i] = 70
	}
	dba := DBA(s)
	assert.Greater(t, dba, 70.0) // energy sum of 8 equal bands exceeds one band
}

func TestDBAAllZeroIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DBA(Spectrum{}))
}

func TestNCRatingMatchesExactCurve(t *testing.T) {
	nc35 := Spectrum{60, 52, 45, 40, 36, 34, 33, 32}
	assert.Equal(t, 35, NCRating(nc35))
}

func TestNCRatingOneDbOverBumpsRating(t *testing.T) {
	nc35 := Spectrum{60, 52, 45, 40, 36, 34, 33, 33}
	assert.Equal(t, 40, NCRating(nc35))
}

func TestNCRatingSaturatesAtHighestCurve(t *testing.T) {
	var loud Spectrum
	for i := range loud {
		loud[i] = 200
	}
	assert.Equal(t, 65, NCRating(loud))
}

func TestNCRatingMonotonicUnderDomination(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		quiet := genSpectrum(t)
		loud := quiet
		for i := range loud {
			loud[i] += rapid.Float64Range(0, 20).Draw(t, "bump")
		}
		assert.GreaterOrEqual(t, NCRating(loud), NCRating(quiet))
	})
}

func TestSpectrumFinite(t *testing.T) {
	s := Spectrum{1, 2, 3, 4, 5, 6, 7, 8}
	assert.True(t, s.Finite())

	bad := Spectrum{1, 2, math.NaN(), 4, 5, 6, 7, 8}
	assert.False(t, bad.Finite())

	inf := Spectrum{1, 2, math.Inf(1), 4, 5, 6, 7, 8}
	assert.False(t, inf.Finite())

	neg := Spectrum{-1, 2, 3, 4, 5, 6, 7, 8}
	assert.False(t, neg.Finite())
}

func TestGuardBand(t *testing.T) {
	v, guarded := guardBand(math.NaN())
	assert.True(t, guarded)
	assert.Equal(t, 0.0, v)

	v, guarded = guardBand(12.5)
	assert.False(t, guarded)
	assert.Equal(t, 12.5, v)
}

func TestGuardSpectrumZeroesOnlyBadBands(t *testing.T) {
	s := Spectrum{1, math.NaN(), 3, math.Inf(1), 5, 6, 7, 8}
	out, warnings := guardSpectrum("e1", s)
	assert.Equal(t, Spectrum{1, 0, 3, 0, 5, 6, 7, 8}, out)
	require.Len(t, warnings, 2)
}

func TestGuardSpectrumNoWarningsWhenClean(t *testing.T) {
	s := Spectrum{1, 2, 3, 4, 5, 6, 7, 8}
	out, warnings := guardSpectrum("e1", s)
	assert.Equal(t, s, out)
	assert.Empty(t, warnings)
}

func genSpectrum(t *rapid.T) Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = rapid.Float64Range(0, 100).Draw(t, "band")
	}
	return s
}
