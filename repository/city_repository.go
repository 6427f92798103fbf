package repository

import (
	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type CityRepository struct{ DB *gorm.DB }

func NewCityRepository(db *gorm.DB) *CityRepository { return &CityRepository{DB: db} }

func (r *CityRepository) List() ([]entity.City, error) {
	var cities []entity.City
	err := r.DB.Order("name").Find(&cities).Error
	return cities, err
}

func (r *CityRepository) GetByID(id uint) (*entity.City, error) {
	var c entity.City
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CityRepository) Create(c *entity.City) error {
	return r.DB.Create(c).Error
}

func (r *CityRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.City{}, id)
	return res.RowsAffected, res.Error
}
