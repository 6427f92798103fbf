package services

import (
	"strings"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/repository"
)

type CityService struct {
	Repo *repository.CityRepository
}

func NewCityService(repo *repository.CityRepository) *CityService {
	return &CityService{Repo: repo}
}

func (s *CityService) List() ([]entity.City, error) {
	return s.Repo.List()
}

func (s *CityService) Create(name string) (*entity.City, error) {
	city := &entity.City{Name: strings.TrimSpace(name)}
	if err := s.Repo.Create(city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("city not found")
	}
	return nil
}
