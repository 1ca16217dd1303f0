package dto

// UserClaims - данные пользователя, доступные в контексте запроса.
type UserClaims struct {
	UserID uint64
	Login  string
	Name   string
	Role   string
	Region string
}

// DisplayName - как пользователь подписывается в отметках об отказе.
func (c UserClaims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Login
}
