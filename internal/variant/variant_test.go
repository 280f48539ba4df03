package variant

import (
	"testing"

	"github.com/vovakirdan/monster-hunt/internal/sim"
)

func TestBuiltinVariantsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "cautious", "scout"} {
		if !Exists(id) {
			t.Errorf("builtin variant %q not registered", id)
		}
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if len(list) < 3 {
		t.Fatalf("List() returned %d variants, expected at least 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestLookup(t *testing.T) {
	v, err := Lookup("cautious")
	if err != nil {
		t.Fatalf("Lookup(cautious) failed: %v", err)
	}
	if v.Policies.Danger != sim.DangerLookahead {
		t.Errorf("cautious danger policy = %v, expected lookahead", v.Policies.Danger)
	}

	if _, err := Lookup("nope"); err == nil {
		t.Error("Lookup(nope) should fail")
	}
}
