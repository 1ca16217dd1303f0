package dto

type LoginDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponseDTO struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   int64         `json:"expiresAt"`
	User        UserPublicDTO `json:"user"`
}

type UserPublicDTO struct {
	ID     uint64 `json:"id"`
	Login  string `json:"login"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Region string `json:"region"`
}
