// Package fixture produces reproducible sample blocks and lane operands and
// compares lane results. It is shared by the package tests and the polyinfo
// self checks, so it must not import testing.
package fixture
