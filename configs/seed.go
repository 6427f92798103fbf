package configs

import (
	"dishpatch-be/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedRoles creates the fixed role set.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{
		entity.RoleAdmin,
		entity.RoleCustomer,
		entity.RoleRestaurantOwner,
		entity.RoleDeliveryPartner,
	} {
		if err := db.FirstOrCreate(&entity.Role{}, entity.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap admin user when none exists.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Roles:    []entity.Role{adminRole},
	}
	return db.Create(&admin).Error
}
