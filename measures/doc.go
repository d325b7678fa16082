// Package measures computes entropy and complexity measures of
// one-dimensional time series: permutation entropy, spectral entropy, SVD
// entropy, approximate entropy, sample entropy and Lempel-Ziv complexity.
//
// Every measure is a stateless function over a complete, caller-owned
// sequence; none mutates its input or retains state between calls, so
// concurrent calls on independent sequences are safe without synchronization.
package measures
