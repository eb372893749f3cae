// Package generic is the portable scalar backend for the 4-lane vectors.
//
// Every vector operation is four independent scalar operations. It is the
// fallback when no hardware backend is compiled in, and it is always built so
// tests of other backends can use it as the reference.
package generic
