package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Admin":      RoleAdmin,
		"Instructor": RoleInstructor,
		"":           RoleNone,
		"admin":      RoleNone, // stored roles are case-sensitive
		"Superuser":  RoleNone,
		"garbage":    RoleNone,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsAssignable(t *testing.T) {
	for _, ok := range []string{"Admin", "Instructor"} {
		if !IsAssignable(ok) {
			t.Fatalf("expected %q to be assignable", ok)
		}
	}
	for _, bad := range []string{"", "admin", "None", "Superuser"} {
		if IsAssignable(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestParseInstrumentStatus(t *testing.T) {
	for _, ok := range []string{"pending", "approved", "denied"} {
		if _, err := ParseInstrumentStatus(ok); err != nil {
			t.Fatalf("ParseInstrumentStatus(%q) returned %v", ok, err)
		}
	}
	if _, err := ParseInstrumentStatus("published"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
