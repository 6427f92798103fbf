package repository

import (
	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List(cityID uint, page, limit int) ([]entity.Restaurant, int64, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if cityID != 0 {
		q = q.Where("city_id = ?", cityID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := q.Order("id").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) GetByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Restaurant{}, id)
	return res.RowsAffected, res.Error
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}
