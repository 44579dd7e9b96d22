// internal/models/user.go
package models

import "golang.org/x/crypto/bcrypt"

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Avatar   string `json:"avatar,omitempty"`
}

// Credential is a row in the mock credential table. There is no real
// identity backend; the table lives in memory for the process lifetime.
type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	UserID       string `json:"user_id"`
}

func (c *Credential) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hashedPassword)
	return nil
}

func (c *Credential) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
}

type UserPatch struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

func (p *UserPatch) Apply(user *User) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Phone != nil {
		user.Phone = *p.Phone
	}
	if p.Location != nil {
		user.Location = *p.Location
	}
	if p.Avatar != nil {
		user.Avatar = *p.Avatar
	}
}
