package sim

import "fmt"

// DangerPolicy decides which facing defines a monster's danger cell and
// whether the agent second-guesses an adjacent attack.
type DangerPolicy int

const (
	// DangerFacing marks only the cell ahead of the current facing as
	// dangerous. Adjacent viable targets are always attacked.
	DangerFacing DangerPolicy = iota

	// DangerLookahead predicts the facing after the next rotation. The
	// agent refuses an adjacent attack when that predicted facing points
	// back at it, and plans approaches around next-turn danger cells.
	DangerLookahead
)

func (p DangerPolicy) String() string {
	switch p {
	case DangerFacing:
		return "facing"
	case DangerLookahead:
		return "lookahead"
	default:
		return "unknown"
	}
}

// ParseDangerPolicy converts a config string to a DangerPolicy.
func ParseDangerPolicy(s string) (DangerPolicy, error) {
	switch s {
	case "facing":
		return DangerFacing, nil
	case "lookahead":
		return DangerLookahead, nil
	default:
		return DangerFacing, fmt.Errorf("sim: unknown danger policy %q", s)
	}
}

// VisibilityPolicy decides what the agent knows about monster positions.
type VisibilityPolicy int

const (
	// VisibilityOmniscient plans from the environment's live monster table.
	VisibilityOmniscient VisibilityPolicy = iota

	// VisibilityPerception plans only from the agent's perception cache,
	// filled by scanning a Chebyshev neighborhood each turn and pruned of
	// monsters that no longer exist.
	VisibilityPerception
)

func (p VisibilityPolicy) String() string {
	switch p {
	case VisibilityOmniscient:
		return "omniscient"
	case VisibilityPerception:
		return "perception"
	default:
		return "unknown"
	}
}

// ParseVisibilityPolicy converts a config string to a VisibilityPolicy.
func ParseVisibilityPolicy(s string) (VisibilityPolicy, error) {
	switch s {
	case "omniscient":
		return VisibilityOmniscient, nil
	case "perception":
		return VisibilityPerception, nil
	default:
		return VisibilityOmniscient, fmt.Errorf("sim: unknown visibility policy %q", s)
	}
}

// Policies bundles the strategy choices that vary between hunt variants.
type Policies struct {
	Danger           DangerPolicy
	Visibility       VisibilityPolicy
	PerceptionRadius int  // Chebyshev radius scanned per turn (perception mode)
	AvoidDanger      bool // path search treats danger cells as forbidden
}

// DefaultPolicies returns the policy set of the classic variant: full
// knowledge, current-facing danger, and danger-avoiding path search.
func DefaultPolicies() Policies {
	return Policies{
		Danger:           DangerFacing,
		Visibility:       VisibilityOmniscient,
		PerceptionRadius: 2,
		AvoidDanger:      true,
	}
}
