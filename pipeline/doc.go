// Package pipeline composes optimization passes into a fixed-point
// local-optimization loop, optionally followed by a layout stage.
//
// What
//
//   - Pass: the contract every stage implements — a named, in-place
//     circuit transformation. Stock passes (basis rewriting, block
//     consolidation, routing) are external collaborators that plug in
//     through this interface.
//   - FixedPoint: repeat a pass list until the operation count stops
//     shrinking or an iteration cap is reached. Gate count is the
//     fixed-point measure: a single cancellation sweep is greedy and
//     may expose new pairs for the next sweep.
//   - Optimize: the default pipeline — cancellation to a fixed point,
//     then layout.Compute for the virtual→physical mapping.
//
// Why
//
//	The cancellation pass deliberately guarantees only one greedy sweep;
//	iterating to quiescence is an orchestration concern, kept out of the
//	pass so callers can interleave their own stages between sweeps.
//
// Errors
//
//   - ErrNilCircuit / ErrNilCoupling for missing inputs.
//   - ErrBadIterations for a non-positive iteration cap.
//   - Pass errors abort the loop and are wrapped with the pass name.
//   - Layout errors propagate unchanged so callers can errors.Is against
//     layout.ErrCircuitTooLarge and friends.
package pipeline
