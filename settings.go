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
	"errors"
	"fmt"
	"slices"
)

// Settings holds the base dab properties and the mappings of a brush.
//
// An [Engine] keeps its own copy of the settings, so a Settings value may
// be modified freely after it was passed to [NewEngine] or
// [Engine.SetSettings].
type Settings struct {
	Size     float64 // base diameter in pixels
	Opacity  float64 // base opacity, [0, 1]
	Hardness float64 // base edge hardness, [0, 1]
	Flow     float64 // base flow, [0, 1]
	Spacing  float64 // distance between dabs, as a fraction of the dab size
	Rotation float64 // base rotation in degrees
	Color    RGB

	// Mappings are applied in order. Later mappings see the result of
	// earlier ones: multiplicative and additive targets accumulate, while
	// hardness and scatter keep only the last value assigned.
	Mappings []Mapping
}

// DefaultSettings returns a small round black brush without mappings.
func DefaultSettings() *Settings {
	return &Settings{
		Size:     20,
		Opacity:  1,
		Hardness: 0.5,
		Flow:     1,
		Spacing:  0.15,
	}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Mappings = slices.Clone(s.Mappings)
	return &c
}

// Validate reports mappings which have no defined effect.
//
// The engine accepts such settings and silently skips the undefined
// parts; Validate lets callers surface the problem when a brush is
// configured. The returned error is nil or wraps one or more
// [*UnsupportedError] values.
func (s *Settings) Validate() error {
	var errs []error
	for i, m := range s.Mappings {
		if !m.Source.valid() {
			errs = append(errs, &UnsupportedError{Index: i, Field: "source", Value: m.Source.String()})
		}
		if !m.Curve.Supported() {
			errs = append(errs, &UnsupportedError{Index: i, Field: "curve", Value: m.Curve.String()})
		}
		if !m.Target.Supported() {
			errs = append(errs, &UnsupportedError{Index: i, Field: "target", Value: m.Target.String()})
		}
	}
	return errors.Join(errs...)
}

// UnsupportedError describes a mapping field without defined behaviour.
type UnsupportedError struct {
	Index int    // position in Settings.Mappings
	Field string // "source", "curve" or "target"
	Value string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("mapping %d: unsupported %s %q", e.Index, e.Field, e.Value)
}
