// Package qopt is an in-memory optimization core for quantum circuits:
// algebraic gate cancellation and spectral qubit layout over hardware
// coupling graphs.
//
// 🚀 What is qopt?
//
//	A small, deterministic library that brings together:
//		• Circuit primitives: operations with exact unitaries, global phase,
//		  per-qubit dependency wires with O(1) splice removal
//		• Cancellation: commutation-aware inverse-pair elimination
//		• Layout: greedy coupling-subgraph selection + spectral matching
//		  (Jacobi eigendecomposition, Cauchy-kernel similarity, Hungarian
//		  assignment)
//		• Orchestration: fixed-point pass pipeline
//
// ✨ Why choose qopt?
//
//   - Minimal API, clear naming, sentinel errors matched with errors.Is
//   - Deterministic – seeded randomness only, never time-based
//   - Pure Go – no cgo, a single test-only dependency
//
// Under the hood, everything is organized under five subpackages:
//
//	circuit/  — Circuit, Operation, gate set, dependency wires
//	matrix/   — dense float64 matrices + symmetric eigendecomposition
//	cancel/   — commutation-and-inverse cancellation pass
//	layout/   — coupling/interaction graphs, spectral virtual→physical map
//	pipeline/ — fixed-point composition of passes, optional layout stage
//
// Quick ASCII example:
//
//	q0 ──●────────●──        q0 ───────
//	     │        │      ⇒
//	q1 ──X──RX────X──        q1 ──RX───
//
//	two entangling gates separated by a commuting rotation cancel.
//
// Dive into each package's doc.go for contracts, complexity and error sets.
//
//	go get github.com/katalvlaran/qopt
package qopt
