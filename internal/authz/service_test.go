package authz

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:authz_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("create authz service failed: %v", err)
	}
	if err := BootstrapBuiltinRoles(svc); err != nil {
		t.Fatalf("bootstrap roles failed: %v", err)
	}
	return svc
}

func TestBuiltinRoleMatrix(t *testing.T) {
	svc := setupAuthzTest(t)

	cases := []struct {
		role   string
		object string
		action string
		want   bool
	}{
		{"Admin", "/api/pizza", "POST", true},
		{"Admin", "/api/pizza/:id", "DELETE", true},
		{"Admin", "/api/checkout/checkouts", "GET", true},
		{"Customer", "/api/pizza", "GET", true},
		{"Customer", "/api/pizza/:id", "GET", true},
		{"Customer", "/api/pizza", "POST", false},
		{"Customer", "/api/pizza/:id", "DELETE", false},
		{"Customer", "/api/auth/update-profile", "PUT", true},
		{"Customer", "/api/checkout/create-checkout", "POST", true},
		{"Customer", "/api/checkout/checkouts/:id", "GET", true},
		{"DeliveryPartner", "/api/checkout/update-order-status/:order_id", "PATCH", true},
		{"DeliveryPartner", "/api/pizza", "POST", false},
	}
	for _, tc := range cases {
		got, err := svc.EnforceRole(tc.role, tc.object, tc.action)
		if err != nil {
			t.Fatalf("enforce %s %s %s failed: %v", tc.role, tc.action, tc.object, err)
		}
		if got != tc.want {
			t.Fatalf("enforce %s %s %s want %v got %v", tc.role, tc.action, tc.object, tc.want, got)
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	svc := setupAuthzTest(t)

	if err := BootstrapBuiltinRoles(svc); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	policies, err := svc.Enforcer().GetFilteredPolicy(0, "role:Customer")
	if err != nil {
		t.Fatalf("get policies failed: %v", err)
	}
	if len(policies) != len(BuiltinRoleSeeds()[1].Policies) {
		t.Fatalf("customer policies duplicated: %d", len(policies))
	}
}

func TestEnsureRoleRejectsReserved(t *testing.T) {
	svc := setupAuthzTest(t)

	if _, err := svc.EnsureRole("__anchor__"); err == nil {
		t.Fatalf("expected reserved role rejection")
	}
	role, err := svc.EnsureRole("Store Manager")
	if err != nil {
		t.Fatalf("ensure role failed: %v", err)
	}
	if role != "role:Store_Manager" {
		t.Fatalf("unexpected role name: %s", role)
	}
}

func TestNormalizeHelpers(t *testing.T) {
	if _, err := NormalizeRole("   "); err == nil {
		t.Fatalf("expected error for blank role")
	}
	if got, _ := NormalizeRole("role:Admin"); got != "role:Admin" {
		t.Fatalf("unexpected role: %s", got)
	}

	cases := map[string]string{
		"":                "/",
		"/api":            "/",
		"/api/pizza":      "/pizza",
		"/pizza":          "/pizza",
		"checkout/orders": "/checkout/orders",
	}
	for in, want := range cases {
		if got := NormalizeObject(in); got != want {
			t.Fatalf("NormalizeObject(%q) want %q got %q", in, want, got)
		}
	}

	if got := NormalizeAction(" get "); got != "GET" {
		t.Fatalf("NormalizeAction want GET got %q", got)
	}
}
