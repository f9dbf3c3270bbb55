package rules

import "testing"

func TestNewRuleTypeChecked(t *testing.T) {
	if _, err := NewRule("lives", TypeInt, 3); err != nil {
		t.Fatalf("valid int rule: %v", err)
	}
	if _, err := NewRule("lives", TypeInt, "three"); err == nil {
		t.Fatal("expected error for string default on an int rule")
	}
	if _, err := NewRule("seed", TypeBytes, nil); err != nil {
		t.Errorf("bytes rules should accept a nil default: %v", err)
	}
	if _, err := NewRule("lives", TypeInt, nil); err == nil {
		t.Error("only bytes rules may default to nil")
	}
}

func TestSetAndGetters(t *testing.T) {
	rs, err := New(
		Must("level", TypeInt, 1),
		Must("fast", TypeBool, false),
		Must("label", TypeString, "a"),
		Must("seed", TypeBytes, []byte(nil)),
		Must("size", TypeIntPair, [2]int{20, 10}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if rs.Int("level") != 1 || rs.Bool("fast") || rs.String("label") != "a" {
		t.Error("defaults not readable")
	}
	if rs.Bytes("seed") != nil {
		t.Error("unset bytes rule should read as nil")
	}

	if err := rs.Set("level", 5); err != nil {
		t.Fatal(err)
	}
	if rs.Int("level") != 5 {
		t.Errorf("level = %d after set, want 5", rs.Int("level"))
	}
	if err := rs.Set("size", [2]int{10, 10}); err != nil {
		t.Fatal(err)
	}
	if rs.IntPair("size") != [2]int{10, 10} {
		t.Error("size not updated")
	}

	if err := rs.Set("level", "high"); err == nil {
		t.Error("expected type error setting int rule to string")
	}
	if err := rs.Set("missing", 1); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestDuplicateRuleRejected(t *testing.T) {
	_, err := New(
		Must("level", TypeInt, 1),
		Must("level", TypeInt, 2),
	)
	if err == nil {
		t.Fatal("expected error for duplicate rule name")
	}
}

func TestOverrideIgnoresUnknownNames(t *testing.T) {
	rs, _ := New(Must("level", TypeInt, 1))

	err := rs.Override(map[string]any{
		"level":    3,
		"nonesuch": true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if rs.Int("level") != 3 {
		t.Errorf("level = %d, want 3", rs.Int("level"))
	}

	if err := rs.Override(map[string]any{"level": "x"}); err == nil {
		t.Error("expected type error for known rule with wrong value type")
	}
}

func TestRegisterPrefixesAndShares(t *testing.T) {
	parent, _ := New(Must("level", TypeInt, 1))
	sub, _ := Named("gravity", Must("lock_delay_ms", TypeInt, 500))

	if err := parent.Register(sub); err != nil {
		t.Fatal(err)
	}
	if !parent.Has("gravity_lock_delay_ms") {
		t.Fatal("registered rule not visible under prefixed name")
	}

	// An override through the parent must reach the owning sub-ruleset.
	if err := parent.Set("gravity_lock_delay_ms", 900); err != nil {
		t.Fatal(err)
	}
	if sub.Int("lock_delay_ms") != 900 {
		t.Errorf("sub rule = %d after parent set, want 900", sub.Int("lock_delay_ms"))
	}
}

func TestRegisterUnnamedRejected(t *testing.T) {
	parent, _ := New()
	sub, _ := New(Must("x", TypeInt, 0))
	if err := parent.Register(sub); err == nil {
		t.Fatal("expected error registering unnamed ruleset")
	}
}

func TestRegisterConflictRejected(t *testing.T) {
	parent, _ := New(Must("gravity_g", TypeInt, 1))
	sub, _ := Named("gravity", Must("g", TypeInt, 2))
	if err := parent.Register(sub); err == nil {
		t.Fatal("expected error for conflicting prefixed name")
	}
}

func TestNamesSorted(t *testing.T) {
	rs, _ := New(
		Must("zeta", TypeInt, 0),
		Must("alpha", TypeInt, 0),
		Must("mid", TypeInt, 0),
	)
	names := rs.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestGetterPanicsOnWrongType(t *testing.T) {
	rs, _ := New(Must("level", TypeInt, 1))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading int rule as bool")
		}
	}()
	rs.Bool("level")
}
