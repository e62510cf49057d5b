package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Username               string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email                  string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Password               string `json:"-"`
	Role                   string `gorm:"size:20;not null" json:"role"`
	Phone                  string `gorm:"size:20" json:"phone"`
	Address                string `gorm:"type:text" json:"address"`
	AccountActivated       bool   `json:"accountActivated"`
	AccountActivationToken string `gorm:"size:64;index" json:"-"`
	PasswordResetToken     string `gorm:"size:64;index" json:"-"`
}

type SignupData struct {
	Username string `json:"username" form:"username" binding:"required,max=150"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	Phone    string `json:"phone" form:"phone" binding:"max=20"`
	Address  string `json:"address" form:"address"`
}

type LoginData struct {
	Identifier string `json:"identifier" form:"identifier" binding:"required"`
	Password   string `json:"password" form:"password" binding:"required"`
}
