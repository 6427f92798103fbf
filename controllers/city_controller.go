package controllers

import (
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"

	"github.com/gin-gonic/gin"
)

type CityController struct{ Svc *services.CityService }

func NewCityController(s *services.CityService) *CityController { return &CityController{Svc: s} }

// GET /cities
func (h *CityController) List(c *gin.Context) {
	cities, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "cities", cities)
}

// POST /admin/cities
func (h *CityController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	city, err := h.Svc.Create(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "city created", city)
}

// DELETE /admin/cities/:id
func (h *CityController) Delete(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid city id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "city deleted", nil)
}
