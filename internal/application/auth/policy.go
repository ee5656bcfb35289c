package auth

import (
	"net/http"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Recursos protegidos por la política.
const (
	ResourceItems         = "items"
	ResourceCategories    = "categories"
	ResourceSubCategories = "subcategories"
	ResourceReports       = "reports"
)

// Action operación sobre un recurso.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ActionFromMethod deriva la acción del método HTTP. ok=false para métodos no mapeados.
func ActionFromMethod(method string) (Action, bool) {
	switch method {
	case http.MethodGet, http.MethodHead:
		return ActionRead, true
	case http.MethodPost:
		return ActionCreate, true
	case http.MethodPut:
		return ActionUpdate, true
	case http.MethodDelete:
		return ActionDelete, true
	}
	return "", false
}

// Permission par recurso/acción.
type Permission struct {
	Resource string
	Action   Action
}

// Policy tabla declarativa {recurso, acción} -> roles permitidos.
// No asume orden entre roles: cada entrada lista sus roles explícitamente.
type Policy map[Permission][]entity.Role

// Allows true si role figura en la entrada. Una entrada ausente niega.
func (p Policy) Allows(resource string, action Action, role entity.Role) bool {
	for _, r := range p[Permission{Resource: resource, Action: action}] {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultPolicy lectura para los cuatro roles; escritura solo SuperAdmin y Admin;
// reportes para SuperAdmin, Admin y Manager.
func DefaultPolicy() Policy {
	all := entity.AllRoles()
	admins := []entity.Role{entity.RoleSuperAdmin, entity.RoleAdmin}
	p := Policy{
		{ResourceReports, ActionRead}: {entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleManager},
	}
	for _, res := range []string{ResourceItems, ResourceCategories, ResourceSubCategories} {
		p[Permission{res, ActionRead}] = all
		p[Permission{res, ActionCreate}] = admins
		p[Permission{res, ActionUpdate}] = admins
		p[Permission{res, ActionDelete}] = admins
	}
	return p
}
