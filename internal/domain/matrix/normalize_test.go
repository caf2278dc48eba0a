package matrix

import "testing"

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Senior Engineer", "Senior Engineer"},
		{"  Senior   Engineer ", "Senior Engineer"},
		{"\tSenior\nEngineer", "Senior Engineer"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeTitle(c.in); got != c.want {
			t.Fatalf("NormalizeTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTitle_Idempotent(t *testing.T) {
	a := NormalizeTitle("  Senior   Engineer ")
	b := NormalizeTitle("Senior Engineer")
	if a != b {
		t.Fatalf("normalized forms differ: %q vs %q", a, b)
	}
	if NormalizeTitle(a) != a {
		t.Fatalf("normalization not idempotent: %q", a)
	}
}

func TestLabelFromKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"team_coaching", "Team Coaching"},
		{"coaching", "Coaching"},
		{"COACHING", "Coaching"},
		{"stakeholder_management_101", "Stakeholder Management 101"},
		{"", ""},
	}
	for _, c := range cases {
		if got := LabelFromKey(c.in); got != c.want {
			t.Fatalf("LabelFromKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolveRef(t *testing.T) {
	key, label, ok := ResolveRef("team_coaching")
	if !ok || key != "team_coaching" || label != "Team Coaching" {
		t.Fatalf("bare string: got (%q, %q, %v)", key, label, ok)
	}

	key, label, ok = ResolveRef(map[string]any{"key": "coaching", "label": "Coaching skills"})
	if !ok || key != "coaching" || label != "Coaching skills" {
		t.Fatalf("object with label: got (%q, %q, %v)", key, label, ok)
	}

	key, label, ok = ResolveRef(map[string]any{"id": "comms"})
	if !ok || key != "comms" || label != "Comms" {
		t.Fatalf("id fallback: got (%q, %q, %v)", key, label, ok)
	}

	key, label, ok = ResolveRef(map[string]any{"name": "ownership"})
	if !ok || key != "ownership" || label != "ownership" {
		t.Fatalf("name as key and label: got (%q, %q, %v)", key, label, ok)
	}

	if _, _, ok := ResolveRef(map[string]any{"label": "No Key"}); ok {
		t.Fatalf("reference without key should not resolve")
	}
	if _, _, ok := ResolveRef(42.0); ok {
		t.Fatalf("scalar reference should not resolve")
	}
	if _, _, ok := ResolveRef(""); ok {
		t.Fatalf("empty string reference should not resolve")
	}
}

func TestCoerceString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Senior", "Senior"},
		{float64(3), "3"},
		{float64(2.5), "2.5"},
		{true, "true"},
		{[]any{"x"}, ""},
	}
	for _, c := range cases {
		if got := CoerceString(c.in); got != c.want {
			t.Fatalf("CoerceString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
