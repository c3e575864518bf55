// Package testutil provides shared test utilities for aoc2023.
//
// # Fixtures
//
// The fixtures.go file holds the worked puzzle grids and their answers:
//
//   - Diamond, Complex - small loops used for the half-length answer
//   - Box, Squeeze - nine-row loops whose interiors are separated by
//     passages narrower than a cell
//   - Larger, Junk - twenty-column loops surrounded by unconnected pipes
//   - Fixtures() - every grid with its expected answers, for table tests
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestDir(t) - creates a temp directory with an .aoc/config.yaml
//   - WriteInputFile(t, dir, name, content) - writes a puzzle input file
//
// # Assertions
//
// The assertions.go file provides custom test assertions:
//
//   - AssertClassCounts(t, classes, loop, interior, exterior)
//   - AssertPartition(t, classes, minPt, maxPt) - every cell classified once
//
// # Timeouts
//
//   - ContextWithTestDeadline(t, fallback) - a context bounded by the test
//     deadline
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    for _, fx := range testutil.Fixtures() {
//	        g := pipes.Parse(fx.Input)
//	        // ...
//	    }
//	}
package testutil
