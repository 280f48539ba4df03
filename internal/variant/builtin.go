package variant

import "github.com/vovakirdan/monster-hunt/internal/sim"

func init() {
	Register(Variant{
		ID:      "classic",
		Title:   "Classic",
		Summary: "full knowledge, avoids current lines of sight, attacks any adjacent viable target",
		Policies: sim.Policies{
			Danger:           sim.DangerFacing,
			Visibility:       sim.VisibilityOmniscient,
			PerceptionRadius: 2,
			AvoidDanger:      true,
		},
	})

	Register(Variant{
		ID:      "cautious",
		Title:   "Cautious",
		Summary: "full knowledge, predicts the next rotation and refuses attacks that invite retaliation",
		Policies: sim.Policies{
			Danger:           sim.DangerLookahead,
			Visibility:       sim.VisibilityOmniscient,
			PerceptionRadius: 2,
			AvoidDanger:      false,
		},
	})

	Register(Variant{
		ID:      "scout",
		Title:   "Scout",
		Summary: "hunts from a short-range perception cache instead of ground truth",
		Policies: sim.Policies{
			Danger:           sim.DangerFacing,
			Visibility:       sim.VisibilityPerception,
			PerceptionRadius: 1,
			AvoidDanger:      false,
		},
	})
}
