package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Role rol de un usuario. No hay orden numérico entre roles: cada ruta declara
// explícitamente qué roles admite (ver auth.Policy).
type Role string

// Roles válidos para User.
const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleStaff      Role = "Staff"
)

var roles = []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleStaff}

// AllRoles devuelve los cuatro roles.
func AllRoles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// ParseRole acepta el nombre (sin distinguir mayúsculas) o el ordinal 1..4.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(roles) {
			return roles[n-1], nil
		}
		return "", fmt.Errorf("rol fuera de rango: %d", n)
	}
	for _, r := range roles {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// Valid indica si r es uno de los cuatro roles.
func (r Role) Valid() bool {
	for _, v := range roles {
		if v == r {
			return true
		}
	}
	return false
}

// UnmarshalJSON acepta "Admin", "admin" o 2.
func (r *Role) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*r = ""
		return nil
	case string:
		if v == "" {
			*r = ""
			return nil
		}
		parsed, err := ParseRole(v)
		if err != nil {
			return err
		}
		*r = parsed
	case float64:
		parsed, err := ParseRole(strconv.Itoa(int(v)))
		if err != nil {
			return err
		}
		*r = parsed
	default:
		return fmt.Errorf("rol inválido: %s", string(b))
	}
	return nil
}

// User usuario del sistema.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt, nunca plano
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LastLoginAt  *time.Time
}

// FullName nombre + apellido.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
