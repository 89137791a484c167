// Package cancel: the structural commutation rule table.
//
// Rules follow the operator algebra of the controlled-X family:
// CX(a,b) commutes with anything diagonal in Z on its control a and
// with anything diagonal in X on its target b. Deciding by touched
// qubits avoids recomputing tensor products for every pair — the
// performance-critical shortcut of the whole pass.
package cancel

import "github.com/katalvlaran/qopt/circuit"

// gateRole classifies an operation for the rule table.
type gateRole int

const (
	roleOther      gateRole = iota // unrecognized: conservative default
	roleEntangling                 // controlled-X-like, operands (control, target)
	roleTargetAxis                 // single-qubit rotation about the X (target) axis
	roleControlAxis                // single-qubit rotation about the Z (control) axis
)

// roleOf maps gate names to rule-table roles. Only shapes the table
// covers are classified; everything else stays roleOther.
func roleOf(op *circuit.Operation) gateRole {
	switch op.Name {
	case "cx":
		if op.Arity() == 2 {
			return roleEntangling
		}
	case "rx", "x":
		if op.Arity() == 1 {
			return roleTargetAxis
		}
	case "rz", "z", "s", "t":
		if op.Arity() == 1 {
			return roleControlAxis
		}
	}

	return roleOther
}

// commute reports whether op1 and op2 may be reordered without changing
// the circuit's action.
//
// Disjoint operations always commute. Sharing pairs are decided by the
// rule table:
//
//	entangling(a,b) × entangling(c,d): same control, same target, or no shared qubit
//	entangling(a,b) × target-axis(q):  q == b, or q ∉ {a,b}
//	entangling(a,b) × control-axis(q): q == a, or q ∉ {a,b}
//	same-axis single-qubit rotations on one qubit commute
//
// All other sharing pairs are treated as non-commuting — never reorder
// across an unrecognized boundary.
// Complexity: O(1).
func commute(op1, op2 *circuit.Operation) bool {
	// Disjoint supports commute regardless of gate type.
	if !op1.SharesQubit(op2) {
		return true
	}

	r1, r2 := roleOf(op1), roleOf(op2)

	// Mirror cases: normalize so an entangling op, if any, comes first.
	if r1 != roleEntangling && r2 == roleEntangling {
		op1, op2 = op2, op1
		r1, r2 = r2, r1
	}

	switch {
	case r1 == roleEntangling && r2 == roleEntangling:
		// Shared control or shared target commute; control-target
		// overlap does not.
		return op1.Qubits[0] == op2.Qubits[0] || op1.Qubits[1] == op2.Qubits[1]

	case r1 == roleEntangling && r2 == roleTargetAxis:
		// X-axis rotations pass through the target wire.
		return op2.Qubits[0] == op1.Qubits[1]

	case r1 == roleEntangling && r2 == roleControlAxis:
		// Z-axis rotations pass through the control wire.
		return op2.Qubits[0] == op1.Qubits[0]

	case r1 == r2 && (r1 == roleTargetAxis || r1 == roleControlAxis):
		// Rotations about one axis on the same qubit commute.
		return true
	}

	return false
}
