// seehuhn.de/go/brush - turn pointer samples into brush dabs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package brush

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"seehuhn.de/go/geom/vec"
)

// Engine turns the samples of a stroke into evenly spaced dabs.
//
// An engine is either idle or has one active stroke. Strokes are
// delimited by [Engine.BeginStroke] and [Engine.EndStroke]; samples passed
// to [Engine.ProcessInput] outside a stroke are ignored.
//
// An Engine is not safe for concurrent use. Use one engine per
// simultaneous stroke.
type Engine struct {
	// Observer, if non-nil, receives diagnostic callbacks.
	Observer Observer

	// ObserveEvery limits MappingApplied callbacks to every n-th mapping
	// evaluation. Values below 2 report every evaluation.
	ObserveEvery int

	settings Settings
	rng      *rand.Rand

	// stroke state
	active  bool
	hasLast bool
	last    Sample
	dist    float64 // distance travelled since the last dab
	stroke  uuid.UUID
	emitted int

	evals int // mapping evaluations, for ObserveEvery
}

// NewEngine returns an idle engine using a copy of s.
// If s is nil, [DefaultSettings] are used.
//
// All random numbers used by the engine are drawn from src. If src is
// nil, a randomly seeded generator is used and output involving
// [SourceRandom] or scatter is not reproducible.
func NewEngine(s *Settings, src rand.Source) *Engine {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	e := &Engine{rng: rand.New(src)}
	e.SetSettings(s)
	return e
}

// SetSettings replaces the brush settings. The engine keeps a copy of s.
//
// Settings must not be changed while a stroke is active.
func (e *Engine) SetSettings(s *Settings) {
	if s == nil {
		s = DefaultSettings()
	}
	e.settings = *s.Clone()
	if err := s.Validate(); err != nil {
		Logger().Warn("brush settings have no effect in part", "err", err)
	}
}

// Settings returns a copy of the current brush settings.
func (e *Engine) Settings() *Settings {
	return e.settings.Clone()
}

// AddMapping appends a mapping to the current settings.
// It must not be called while a stroke is active.
func (e *Engine) AddMapping(m Mapping) {
	e.settings.Mappings = append(e.settings.Mappings, m)
}

// ClearMappings removes all mappings from the current settings.
// It must not be called while a stroke is active.
func (e *Engine) ClearMappings() {
	e.settings.Mappings = nil
}

// BeginStroke starts a new stroke. Any stroke in progress is abandoned.
func (e *Engine) BeginStroke() {
	e.active = true
	e.hasLast = false
	e.dist = 0
	e.stroke = uuid.New()
	e.emitted = 0
	Logger().Debug("stroke begin", "stroke", e.stroke)
}

// EndStroke ends the current stroke. Distance travelled since the last
// dab is discarded; no trailing dab is emitted.
func (e *Engine) EndStroke() {
	if e.active {
		Logger().Debug("stroke end", "stroke", e.stroke, "dabs", e.emitted)
	}
	e.active = false
	e.hasLast = false
	e.dist = 0
}

// Active reports whether a stroke is in progress.
func (e *Engine) Active() bool {
	return e.active
}

// StrokeID returns the identifier of the current or most recent stroke.
// It is the zero UUID before the first stroke.
func (e *Engine) StrokeID() uuid.UUID {
	return e.stroke
}

// Handle drives the engine from a pointer event and its button state.
// A pressed sample starts a stroke if none is active and is then
// processed; a released sample ends the active stroke.
func (e *Engine) Handle(s Sample, pressed bool) []Dab {
	if !pressed {
		if e.active {
			e.EndStroke()
		}
		return nil
	}
	if !e.active {
		e.BeginStroke()
	}
	return e.ProcessInput(s)
}

// ProcessInput adds a sample to the current stroke and returns the dabs
// to paint for it, in painting order. The result is empty if no stroke
// is active or the pointer has not moved far enough for the next dab.
//
// The first sample of a stroke always yields exactly one dab, at the
// sample position.
func (e *Engine) ProcessInput(s Sample) []Dab {
	return e.AppendInput(nil, s)
}

// AppendInput is like [Engine.ProcessInput] but appends the dabs to dst
// and returns the extended slice.
func (e *Engine) AppendInput(dst []Dab, s Sample) []Dab {
	if !e.active {
		return dst
	}

	if !e.hasLast {
		dst = e.emit(dst, e.resolve(s))
		e.last = s
		e.hasLast = true
		return dst
	}

	// The spacing for the whole segment is taken from the dab at the new
	// sample, not averaged along the segment.
	spacing := e.resolve(s).Size * e.settings.Spacing

	dist := s.Pos.Sub(e.last.Pos).Length()
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		// A non-finite position adds no distance. The path continues from
		// whichever of the two positions is usable.
		dist = 0
		if finitePos(s.Pos) {
			e.last.Pos = s.Pos
		} else {
			s.Pos = e.last.Pos
		}
	}
	e.dist += dist
	for spacing > 0 && e.dist >= spacing {
		// t is the fraction of the segment still ahead of this dab.
		t := 1.0
		if dist > 0 {
			t = (e.dist - spacing) / dist
		}
		t = clamp01(t)

		d := e.resolve(lerpSample(e.last, s, 1-t))
		e.scatter(&d)
		dst = e.emit(dst, d)

		rest := e.dist - spacing
		if rest == e.dist {
			// spacing is below the resolution of the accumulator
			e.dist = 0
			break
		}
		e.dist = rest
	}
	e.last = s
	return dst
}

// resolve computes the dab for a sample: base values from the settings,
// then every mapping in order, then the final range clamps.
func (e *Engine) resolve(s Sample) Dab {
	d := baseDab(&e.settings, s.Pos)
	for _, m := range e.settings.Mappings {
		in := m.Source.Normalize(s, e.rng)
		out := m.Apply(in)
		m.Target.combine(&d, out)

		if e.Observer != nil {
			e.evals++
			if e.ObserveEvery < 2 || e.evals%e.ObserveEvery == 0 {
				e.Observer.MappingApplied(e.stroke, m, in, out)
			}
		}
	}
	clampDab(&d)
	return d
}

// scatter displaces the dab by up to Scatter*Size/2 along each axis.
func (e *Engine) scatter(d *Dab) {
	if !(d.Scatter > 0) {
		return
	}
	amount := d.Scatter * d.Size * 0.5
	d.Pos.X += (2*e.rng.Float64() - 1) * amount
	d.Pos.Y += (2*e.rng.Float64() - 1) * amount
}

func (e *Engine) emit(dst []Dab, d Dab) []Dab {
	e.emitted++
	if e.Observer != nil {
		e.Observer.DabEmitted(e.stroke, d)
	}
	return append(dst, d)
}

func finitePos(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
