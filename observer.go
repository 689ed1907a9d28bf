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

import "github.com/google/uuid"

// Observer receives diagnostic callbacks from an [Engine].
//
// Callbacks run synchronously on the goroutine calling the engine and
// must not call back into it.
type Observer interface {
	// MappingApplied is called after a mapping has been evaluated,
	// with the normalised input and the mapping output.
	MappingApplied(stroke uuid.UUID, m Mapping, in, out float64)

	// DabEmitted is called for every dab returned to the caller.
	DabEmitted(stroke uuid.UUID, d Dab)
}
