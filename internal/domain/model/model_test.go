package model

import "testing"

func TestRoleValues(t *testing.T) {
	cases := []struct {
		name  string
		got   Role
		value string
	}{
		{"customer", RoleCustomer, "customer"},
		{"admin", RoleAdmin, "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Fatal("expected admin role to be recognized")
	}

	customer := &User{Role: RoleCustomer}
	if customer.IsAdmin() {
		t.Fatal("customer must not be admin")
	}
}
