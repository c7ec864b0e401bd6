// SPDX-License-Identifier: MIT
// Package: gossip/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//
// Priority when multiple validations fail:
//   ErrTooFewVertices → ErrInvalidParameter → ErrInvalidProbability →
//   ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric size parameter (n, rows, cols,
// degree) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a parameter outside its structural domain
// (e.g. a circulant offset ≡ 0 mod n, a non-prime Paley order, k > n/2).
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted attempts
// or received unusable input (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
