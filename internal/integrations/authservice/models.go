package authservice

// Роли пользователей в AuthService
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// User модель пользователя из AuthService
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	LocationID *int64 `json:"location_id,omitempty"` // Локация, к которой привязан менеджер
	IsActive   bool   `json:"is_active"`
}

// CanManageReservations проверяет, что пользователь может управлять бронями
func (u *User) CanManageReservations() bool {
	if !u.IsActive {
		return false
	}
	return u.Role == RoleAdmin || u.Role == RoleManager || u.Role == RoleStaff
}

// CanManageFleet проверяет, что пользователь может менять статусы гидроциклов
func (u *User) CanManageFleet() bool {
	if !u.IsActive {
		return false
	}
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
