package domain

// Role — роль аутентифицированного пользователя.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole валидирует строковое представление роли.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCustomer:
		return RoleCustomer, true
	default:
		return "", false
	}
}

// Principal — аутентифицированный вызывающий. Учётные данные проверяет
// внешний слой аутентификации, сюда попадает только идентичность и роль.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasAnyRole — чистый предикат проверки доступа по набору разрешённых ролей.
func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
