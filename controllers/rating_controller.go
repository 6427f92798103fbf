package controllers

import (
	"dishpatch-be/entity"
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type RatingController struct{ Svc *services.RatingService }

func NewRatingController(s *services.RatingService) *RatingController {
	return &RatingController{Svc: s}
}

// POST /ratings
func (h *RatingController) Create(c *gin.Context) {
	var req services.CreateRatingIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rating, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "rating created", rating)
}

// GET /restaurants/:id/ratings
func (h *RatingController) ListForRestaurant(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	out, err := h.Svc.ListForEntity(entity.RatingEntityRestaurant, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ratings", out)
}

// GET /dishes/:id/ratings
func (h *RatingController) ListForDish(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	out, err := h.Svc.ListForEntity(entity.RatingEntityDish, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ratings", out)
}

// DELETE /ratings/:id
func (h *RatingController) Delete(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid rating id")
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "rating removed", nil)
}
