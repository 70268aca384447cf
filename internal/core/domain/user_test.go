package domain

import "testing"

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role            Role
		isAdmin         bool
		isEditor        bool
		isViewer        bool
		isAdminOrEditor bool
	}{
		{RoleAdmin, true, false, false, true},
		{RoleEditor, false, true, false, true},
		{RoleViewer, false, false, true, false},
		{RoleDealer, false, false, false, false},
		{Role("superuser"), false, false, false, false},
		{Role(""), false, false, false, false},
	}

	for _, tc := range cases {
		if got := tc.role.IsAdmin(); got != tc.isAdmin {
			t.Errorf("%q IsAdmin = %v, want %v", tc.role, got, tc.isAdmin)
		}
		if got := tc.role.IsEditor(); got != tc.isEditor {
			t.Errorf("%q IsEditor = %v, want %v", tc.role, got, tc.isEditor)
		}
		if got := tc.role.IsViewer(); got != tc.isViewer {
			t.Errorf("%q IsViewer = %v, want %v", tc.role, got, tc.isViewer)
		}
		if got := tc.role.IsAdminOrEditor(); got != tc.isAdminOrEditor {
			t.Errorf("%q IsAdminOrEditor = %v, want %v", tc.role, got, tc.isAdminOrEditor)
		}
	}
}

func TestRoleKnown(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleEditor, RoleViewer, RoleDealer} {
		if !r.Known() {
			t.Errorf("%q should be known", r)
		}
	}
	if Role("superuser").Known() {
		t.Errorf("unrecognised classifier should not be known")
	}
}

func TestUserDisplayName(t *testing.T) {
	u := &User{Username: "ayse", FirstName: "Ayşe", LastName: "Demir"}
	if got := u.DisplayName(); got != "Ayşe Demir" {
		t.Fatalf("DisplayName = %q", got)
	}

	u = &User{Username: "ayse"}
	if got := u.DisplayName(); got != "ayse" {
		t.Fatalf("DisplayName fallback = %q", got)
	}
}
