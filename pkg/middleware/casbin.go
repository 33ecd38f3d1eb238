package middleware

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/charmbracelet/log"

	"RequestPortal/internal/store"
)

var (
	enforcer     *casbin.Enforcer
	enforcerOnce sync.Once
)

// adminObjects are the guard objects reserved for the admin role: the three
// admin pages plus the request-management API.
var adminObjects = map[string]bool{
	"employees":      true,
	"departments":    true,
	"accounts":       true,
	"requests-admin": true,
}

// getCasbinModel returns the RBAC model as a string.
func getCasbinModel() string {
	return `[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj`
}

// InitCasbinEnforcer initializes the Casbin enforcer singleton with the
// model and the admin route policy defined in code.
func InitCasbinEnforcer() (*casbin.Enforcer, error) {
	var err error
	enforcerOnce.Do(func() {
		m, errM := model.NewModelFromString(getCasbinModel())
		if errM != nil {
			err = errM
			return
		}
		enforcer, err = casbin.NewEnforcer(m)
		if err != nil {
			return
		}
		for route := range adminObjects {
			if _, err = enforcer.AddPolicy(store.RoleAdmin, route); err != nil {
				return
			}
		}
	})
	return enforcer, err
}

// CanAccess reports whether the given role may open the given route. Routes
// outside the admin set are open to every role.
func CanAccess(role, route string) bool {
	if !adminObjects[route] {
		return true
	}
	enf, err := InitCasbinEnforcer()
	if err != nil {
		log.Error("casbin enforcer error", "err", err)
		return false
	}
	allowed, err := enf.Enforce(role, route)
	if err != nil {
		log.Error("casbin enforce error", "err", err)
		return false
	}
	return allowed
}
