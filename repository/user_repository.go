package repository

import (
	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Roles").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Roles").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) UpdatePassword(email, hashed string) error {
	res := r.DB.Model(&entity.User{}).Where("email = ?", email).Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) List(page, limit int) ([]entity.User, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []entity.User
	err := r.DB.Preload("Roles").
		Order("id").
		Limit(limit).Offset((page - 1) * limit).
		Find(&users).Error
	return users, total, err
}

// ---------------- Roles ----------------

func (r *UserRepository) FindRoleByName(name string) (*entity.Role, error) {
	var role entity.Role
	if err := r.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// HasRole checks users_roles directly so callers need not preload.
func (r *UserRepository) HasRole(userID uint, roleName string) (bool, error) {
	var count int64
	err := r.DB.Table("users_roles").
		Joins("JOIN roles ON roles.id = users_roles.role_id").
		Where("users_roles.user_id = ? AND roles.name = ?", userID, roleName).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) GrantRole(user *entity.User, role *entity.Role) error {
	return r.DB.Model(user).Association("Roles").Append(role)
}

func (r *UserRepository) RevokeRole(user *entity.User, role *entity.Role) error {
	return r.DB.Model(user).Association("Roles").Delete(role)
}
