// Package block moves sample buffers through poly vectors.
//
// The audio callback of a synthesis engine hands over []float32 blocks; the
// functions here walk them four samples at a time with poly.Float and handle
// a trailing partial group through a zero-padded vector, so every sample is
// processed by the same lane code regardless of buffer length.
//
// Element-wise operations:
//   - AddBlock: dst[i] = a[i] + b[i]
//   - MulBlock: dst[i] = a[i] * b[i]
//   - ScaleBlock: dst[i] = src[i] * scale
//   - MixBlock: dst[i] += src[i] * gain (accumulate a voice into a bus)
//   - ClampBlock: dst[i] = min(max(src[i], lo), hi)
//
// Reductions:
//   - Sum: sum of all samples, accumulated per lane then folded
//   - MaxAbs: peak magnitude
//   - AnyAbove: whether any |x[i]| > threshold (silence detection)
//
// Slices passed together must have equal length; a mismatch panics. No
// function allocates, so all are safe on the audio thread and for concurrent
// use on distinct slices.
package block
