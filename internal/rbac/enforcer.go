package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles carried in users.role and in token claims.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds the static role model: every authenticated user reads,
// managers additionally manage evaluations and requirement links, admins
// manage everything.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	readResources := []string{
		"skill", "position", "position_skill",
		"employee", "employee_skill", "analytics", "user",
	}
	for _, res := range readResources {
		if _, err := e.AddPolicy(RoleEmployee, res, "read"); err != nil {
			return nil, err
		}
	}

	managerWrites := []string{"employee_skill", "position_skill"}
	for _, res := range managerWrites {
		for _, act := range []string{"create", "update", "delete"} {
			if _, err := e.AddPolicy(RoleManager, res, act); err != nil {
				return nil, err
			}
		}
	}

	adminWrites := []string{"skill", "position", "employee"}
	for _, res := range adminWrites {
		for _, act := range []string{"create", "update", "delete"} {
			if _, err := e.AddPolicy(RoleAdmin, res, act); err != nil {
				return nil, err
			}
		}
	}

	// Role inheritance: admin > manager > employee.
	if _, err := e.AddGroupingPolicy(RoleManager, RoleEmployee); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleManager); err != nil {
		return nil, err
	}

	return e, nil
}
