// Package pipes traces the closed pipe loop in a puzzle grid and counts the
// cells it encloses.
//
// A grid is parsed once into a sparse map keyed by (column, row). The start
// cell `S` carries no connectivity of its own; its two exits are inferred from
// the neighbours that point back at it.
//
// # Part 1
//
// HalfLength walks two cursors out of the start cell in opposite directions
// until they meet. The step count is the distance to the farthest loop cell.
//
// # Part 2
//
// TraceLoop records the full loop. Loop.CountInterior then scans each row of
// the loop's bounding box left to right, tracking crossings of the boundary:
//
//   - `|` is one crossing
//   - `L` or `F` opens a horizontal run facing up or down
//   - `J` or `7` closes the run, counting a crossing only when it faces the
//     other way from the corner that opened it
//   - `-` leaves the state unchanged
//
// A cell that is not on the loop is interior when an odd number of crossings
// lie to its left. Loop.InteriorByArea reaches the same count through the
// shoelace formula and Pick's theorem, and CountInteriorParallel fans the row
// scan out over a bounded pool of goroutines.
//
// # Errors
//
// Malformed grids are reported through the sentinel errors in errors.go,
// wrapped in a *TraceError that names the failing operation and cell.
package pipes
