package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string `json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`

	Roles []Role `gorm:"many2many:users_roles;" json:"roles"`

	// preload only when the endpoint needs them
	Orders  []Order  `json:"-"`
	Ratings []Rating `json:"-"`
}

// HasRole reports whether the user holds the named role. Roles must be preloaded.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
