package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testPadding = 24
	testFloor   = 0.05
)

func staticTunables() (padding, floor float64) {
	return testPadding, testFloor
}

func TestFitScale_ShrinksToLimitingDimension(t *testing.T) {
	host := Size{W: 800, H: 600}
	content := Size{W: 1000, H: 1400}

	// Height is the limiting axis: (600-24)/1400.
	got := FitScale(host, content, testPadding, testFloor)
	assert.InDelta(t, 576.0/1400.0, got, 1e-9)
}

func TestFitScale_NeverMagnifies(t *testing.T) {
	host := Size{W: 4000, H: 4000}
	content := Size{W: 794, H: 1123}

	assert.Equal(t, 1.0, FitScale(host, content, testPadding, testFloor))
}

func TestFitScale_UnmeasurableInputResolvesToFullScale(t *testing.T) {
	content := Size{W: 794, H: 1123}

	assert.Equal(t, 1.0, FitScale(Size{}, content, testPadding, testFloor))
	assert.Equal(t, 1.0, FitScale(Size{W: 800}, content, testPadding, testFloor))
	assert.Equal(t, 1.0, FitScale(Size{W: 800, H: 600}, Size{}, testPadding, testFloor))
	assert.Equal(t, 1.0, FitScale(Size{W: -5, H: 600}, content, testPadding, testFloor))
}

func TestFitScale_TinyHostBottomsOutAtFloor(t *testing.T) {
	host := Size{W: 30, H: 30}
	content := Size{W: 794, H: 1123}

	assert.Equal(t, testFloor, FitScale(host, content, testPadding, testFloor))
}

func TestFitScale_PaddingLargerThanHost(t *testing.T) {
	// The available area clamps at 1px instead of going negative.
	host := Size{W: 10, H: 10}
	content := Size{W: 794, H: 1123}

	got := FitScale(host, content, testPadding, testFloor)
	assert.Equal(t, testFloor, got)
}

func TestScaler_StaysUnmeasuredUntilBothSizesArrive(t *testing.T) {
	s := NewScaler(staticTunables)

	assert.Equal(t, StateUnmeasured, s.State())
	assert.Equal(t, 1.0, s.Scale())

	s.SetHost(Size{W: 800, H: 600})
	assert.Equal(t, StateUnmeasured, s.State())
	assert.Equal(t, 1.0, s.Scale())

	s.SetContent(Size{W: 1000, H: 1400})
	assert.Equal(t, StateSettled, s.State())
	assert.InDelta(t, 576.0/1400.0, s.Scale(), 1e-9)
}

func TestScaler_RecomputesOnEverySizeChange(t *testing.T) {
	s := NewScaler(staticTunables)
	s.SetHost(Size{W: 800, H: 600})
	s.SetContent(Size{W: 1000, H: 1400})
	first := s.Scale()

	// Taller content shrinks further; the scaler never settles into a
	// terminal value.
	s.SetContent(Size{W: 1000, H: 2800})
	assert.Less(t, s.Scale(), first)

	s.SetHost(Size{W: 8000, H: 8000})
	assert.Equal(t, 1.0, s.Scale())
	assert.Equal(t, StateSettled, s.State())
}

func TestScaler_RecomputeIsIdempotent(t *testing.T) {
	s := NewScaler(staticTunables)
	s.SetHost(Size{W: 800, H: 600})
	s.SetContent(Size{W: 1000, H: 1400})
	first := s.Scale()

	// Rapid duplicate observations must not drift the result.
	s.SetHost(Size{W: 800, H: 600})
	s.SetContent(Size{W: 1000, H: 1400})
	assert.Equal(t, first, s.Scale())
}
