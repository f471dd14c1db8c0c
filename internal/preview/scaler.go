// Package preview keeps on-screen invoice copies fitted to their host
// viewports. Each preview surface owns one Scaler; the off-screen export
// copy is never scaled.
package preview

import (
	"math"
	"sync"
)

// Size is a measured width/height in CSS pixels.
type Size struct {
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func (s Size) measurable() bool {
	return s.W > 0 && s.H > 0
}

// FitScale computes the largest uniform scale s ∈ (0, 1] that fits content
// inside a host viewport after subtracting the padding allowance. Documents
// are never magnified above their natural size. Unmeasurable input (a zero
// host or content dimension) resolves to the full-scale fallback of 1;
// pathologically small hosts bottom out at floor.
func FitScale(host, content Size, padding, floor float64) float64 {
	if !host.measurable() || !content.measurable() {
		return 1
	}

	availW := math.Max(1, host.W-padding)
	availH := math.Max(1, host.H-padding)
	contentW := math.Max(1, content.W)
	contentH := math.Max(1, content.H)

	scale := math.Min(1, math.Min(availW/contentW, availH/contentH))
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1
	}
	return math.Max(floor, scale)
}

// ScalerState tracks whether a scaler has taken its first real measurement.
type ScalerState int

const (
	// StateUnmeasured means no complete measurement has arrived yet; the
	// scale holds its default of 1.
	StateUnmeasured ScalerState = iota
	// StateSettled means the scaler has measured once and now recomputes
	// on every size-change event for the surface's lifetime.
	StateSettled
)

// Scaler recomputes a fit scale whenever the host or the content size
// changes. Recomputation is idempotent from current measurements, so rapid
// observation callbacks only need last-observed-size-wins semantics.
type Scaler struct {
	mu      sync.Mutex
	host    Size
	content Size
	state   ScalerState
	scale   float64

	tunables func() (padding, floor float64)
}

// NewScaler starts unmeasured at scale 1. tunables is read on every
// recompute so padding changes apply without restarting the surface.
func NewScaler(tunables func() (padding, floor float64)) *Scaler {
	return &Scaler{
		scale:    1,
		tunables: tunables,
	}
}

// SetHost records a host viewport measurement.
func (s *Scaler) SetHost(sz Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.host = sz
	s.recompute()
}

// SetContent records a content (natural document size) measurement.
func (s *Scaler) SetContent(sz Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = sz
	s.recompute()
}

// Scale returns the current fit scale.
func (s *Scaler) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

// State reports the measurement state.
func (s *Scaler) State() ScalerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// recompute runs under s.mu. The first complete measurement settles the
// scaler; there is no terminal state after that.
func (s *Scaler) recompute() {
	if !s.host.measurable() || !s.content.measurable() {
		return
	}
	padding, floor := s.tunables()
	s.scale = FitScale(s.host, s.content, padding, floor)
	s.state = StateSettled
}
