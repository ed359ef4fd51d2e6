// Package distance provides distance calculations between bit containers.
//
// Distances are computed over the packed storage words with the popcount
// kernels from internal/simd (hardware POPCNT on x86-64, NEON on ARM64,
// SWAR otherwise).
//
// # Supported Metrics
//
//   - MetricHamming: number of differing bits
//
// # Usage
//
//	d, err := distance.Hamming(a, b)
package distance
