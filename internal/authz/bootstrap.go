package authz

import (
	"fmt"
)

// RoleSeed 内置角色初始化定义
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds 内置角色与路由策略
// 路径为去掉 /api 前缀后的路由，动作为 HTTP 方法
func BuiltinRoleSeeds() []RoleSeed {
	customerPolicies := []Policy{
		{Object: "/auth/update-profile", Action: "PUT"},
		{Object: "/pizza", Action: "GET"},
		{Object: "/pizza/:id", Action: "GET"},
		{Object: "/checkout/*", Action: "*"},
	}

	return []RoleSeed{
		{
			Role: "Admin",
			Policies: []Policy{
				{Object: "/*", Action: "*"},
			},
		},
		{
			Role:     "Customer",
			Policies: customerPolicies,
		},
		{
			Role:     "DeliveryPartner",
			Policies: customerPolicies,
		},
	}
}

// BootstrapBuiltinRoles 幂等初始化内置角色及其路由策略
func BootstrapBuiltinRoles(svc *Service) error {
	if svc == nil || svc.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := svc.EnsureRole(seed.Role)
		if err != nil {
			return fmt.Errorf("ensure role %s failed: %w", seed.Role, err)
		}

		for _, policy := range seed.Policies {
			object := NormalizeObject(policy.Object)
			action := NormalizeAction(policy.Action)

			exists, err := svc.enforcer.HasPolicy(role, object, action)
			if err != nil {
				return fmt.Errorf("check policy for %s failed: %w", role, err)
			}
			if exists {
				continue
			}
			if _, err := svc.enforcer.AddPolicy(role, object, action); err != nil {
				return fmt.Errorf("add policy for %s failed: %w", role, err)
			}
		}
	}

	return svc.ReloadPolicy()
}
