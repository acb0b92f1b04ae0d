package models

import (
	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest частичное обновление, отсутствующие поля не меняются
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UserResponse ответ с информацией о пользователе
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToDomainPatch конвертирует запрос в патч
func (r *UpdateUserRequest) ToDomainPatch() domain.UserPatch {
	return domain.UserPatch{Name: r.Name, Email: r.Email}
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return result
}
