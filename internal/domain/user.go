package domain

// User пользователь
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserPatch частичное обновление пользователя, nil поля не меняются
type UserPatch struct {
	Name  *string
	Email *string
}

// Apply применяет патч к пользователю
func (p UserPatch) Apply(user *User) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
}
