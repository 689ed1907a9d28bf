// Package brush converts a stream of pointer samples into brush dabs.
//
// A [Sample] records one pointer observation: position, pressure, tilt,
// barrel rotation, velocity and time. An [Engine] consumes samples one at
// a time and returns the dabs (circular stamps with resolved size,
// opacity, hardness, flow, rotation, scatter and colour) that should be
// painted for them. Dabs are spaced evenly along the pointer path,
// independent of how often the pointer reports.
//
// The visual properties of each dab start from the base values in
// [Settings] and are then adjusted by an ordered list of [Mapping] values.
// Each mapping reads one input source, shapes it with a response [Curve]
// and combines the result into one dab property.
//
// All randomness (the [SourceRandom] input and scatter displacement) is
// drawn from a generator owned by the engine, so that strokes can be
// reproduced exactly by seeding it.
//
// The package does not rasterise dabs; see the raster sub-package for a
// reference implementation.
package brush
