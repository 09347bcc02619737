package queue

import (
	"math/rand"
	"testing"
)

// invariant checks that every user is in at most one list and no list has
// duplicates.
func invariant(t *testing.T, q Queue) {
	t.Helper()
	seen := map[string]bool{}
	for _, list := range [][]string{q.Accept, q.Decline, q.Tentative} {
		for _, id := range list {
			if seen[id] {
				t.Fatalf("user %s appears twice: %+v", id, q)
			}
			seen[id] = true
		}
	}
}

func member(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func TestApplyMovesUserBetweenLists(t *testing.T) {
	q := Queue{Accept: []string{"1"}}

	q = Apply(q, ActionDecline, "2")
	invariant(t, q)
	if !member(q.Accept, "1") || !member(q.Decline, "2") {
		t.Fatalf("unexpected state: %+v", q)
	}

	// user 1 re-clicks decline and lands at the end of that list
	q = Apply(q, ActionDecline, "1")
	invariant(t, q)
	if len(q.Accept) != 0 {
		t.Fatalf("accept should be empty: %+v", q)
	}
	if len(q.Decline) != 2 || q.Decline[0] != "2" || q.Decline[1] != "1" {
		t.Fatalf("want decline=[2 1], got %v", q.Decline)
	}
}

func TestApplySameActionTwiceKeepsMembership(t *testing.T) {
	q := Queue{}
	q = Apply(q, ActionAccept, "1")
	q = Apply(q, ActionAccept, "2")
	q = Apply(q, ActionAccept, "1") // moves 1 to the back, set unchanged

	invariant(t, q)
	if len(q.Accept) != 2 {
		t.Fatalf("want 2 accepts, got %v", q.Accept)
	}
	if q.Accept[0] != "2" || q.Accept[1] != "1" {
		t.Fatalf("want accept=[2 1], got %v", q.Accept)
	}
}

func TestApplyCycleEndsInLastList(t *testing.T) {
	q := Queue{}
	q = Apply(q, ActionAccept, "1")
	q = Apply(q, ActionDecline, "1")
	q = Apply(q, ActionTentative, "1")

	invariant(t, q)
	if len(q.Accept) != 0 || len(q.Decline) != 0 {
		t.Fatalf("residue left behind: %+v", q)
	}
	if !member(q.Tentative, "1") {
		t.Fatalf("user not in tentative: %+v", q)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	orig := Queue{Accept: []string{"1", "2"}}
	_ = Apply(orig, ActionDecline, "1")
	if len(orig.Accept) != 2 {
		t.Fatalf("input mutated: %v", orig.Accept)
	}
}

func TestApplyRandomSequencesHoldInvariant(t *testing.T) {
	actions := []Action{ActionAccept, ActionDecline, ActionTentative}
	q := Queue{}
	for i := 0; i < 2000; i++ {
		id := string(rune('A' + rand.Intn(12)))
		q = Apply(q, actions[rand.Intn(3)], id)
		invariant(t, q)
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"accept", "decline", "tentative"} {
		if _, err := ParseAction(s); err != nil {
			t.Fatalf("ParseAction(%q): %v", s, err)
		}
	}
	if _, err := ParseAction("kick"); err != ErrBadAction {
		t.Fatalf("want ErrBadAction, got %v", err)
	}
}
