package repository

import (
	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) GetByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) ListByRestaurant(restID uint, page, limit int) ([]entity.Dish, int64, error) {
	q := r.DB.Model(&entity.Dish{}).Where("restaurant_id = ?", restID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Dish
	err := q.Order("id").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DishRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Dish{}, id)
	return res.RowsAffected, res.Error
}
