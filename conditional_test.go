package flexkit

import "testing"

func TestIf_ConstructsOnlyTakenBranch(t *testing.T) {
	type tc struct {
		cond       bool
		wantBranch Branch
		wantText   string
		wantThen   int
		wantElse   int
	}

	tests := map[string]tc{
		"true takes left": {
			cond:       true,
			wantBranch: BranchLeft,
			wantText:   "yes",
			wantThen:   1,
		},
		"false takes right": {
			cond:       false,
			wantBranch: BranchRight,
			wantText:   "no",
			wantElse:   1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			thenCalls, elseCalls := 0, 0
			c := If(tt.cond,
				func() Node { thenCalls++; return Label("yes") },
				func() Node { elseCalls++; return Label("no") },
			)

			// Producing repeatedly never re-evaluates the choice.
			c.Produce()
			out := c.Produce()

			if c.Branch() != tt.wantBranch {
				t.Errorf("Branch() = %v, want %v", c.Branch(), tt.wantBranch)
			}
			if len(out) != 1 || out[0].Text() != tt.wantText {
				t.Errorf("Produce() texts = %v, want [%s]", texts(out), tt.wantText)
			}
			if thenCalls != tt.wantThen || elseCalls != tt.wantElse {
				t.Errorf("constructor calls then=%d else=%d, want then=%d else=%d",
					thenCalls, elseCalls, tt.wantThen, tt.wantElse)
			}
		})
	}
}

func TestIf_MissingElseProducesPlaceholder(t *testing.T) {
	c := If(false, func() Node { return Label("yes") }, nil)

	out := c.Produce()
	if c.Branch() != BranchRight {
		t.Errorf("Branch() = %v, want right", c.Branch())
	}
	if len(out) != 1 || out[0].Kind() != KindPlaceholder {
		t.Errorf("Produce() = %v, want one placeholder", out)
	}
}

func TestEither_TaggedUnion(t *testing.T) {
	left := EitherLeft(Label("l"))
	right := EitherRight(Group(Label("r1"), Label("r2")))

	if left.Branch() != BranchLeft || right.Branch() != BranchRight {
		t.Errorf("branches = %v, %v, want left, right", left.Branch(), right.Branch())
	}
	if got := texts(right.Produce()); len(got) != 2 || got[0] != "r1" || got[1] != "r2" {
		t.Errorf("right.Produce() texts = %v, want [r1 r2]", got)
	}
	if BranchLeft.String() != "left" || BranchRight.String() != "right" {
		t.Error("Branch.String() mismatch")
	}
}
