package controllers

import (
	"dishpatch-be/entity"
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(s *services.DishService) *DishController { return &DishController{Svc: s} }

// GET /restaurants/:id/dishes
func (h *DishController) ListForRestaurant(c *gin.Context) {
	restID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	page, limit := utils.Pagination(c)
	out, err := h.Svc.ListByRestaurant(restID, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "dishes", out)
}

// GET /dishes/:id
func (h *DishController) Detail(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	d, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "dish", d)
}

// POST /dishes
func (h *DishController) Create(c *gin.Context) {
	var req services.CreateDishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.Create(utils.CurrentUserID(c), utils.HasRole(c, entity.RoleAdmin), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "dish created", d)
}

// PATCH /dishes/:id
func (h *DishController) Update(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	var req services.UpdateDishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.Update(utils.CurrentUserID(c), utils.HasRole(c, entity.RoleAdmin), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "dish updated", d)
}

// DELETE /dishes/:id
func (h *DishController) Delete(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), utils.HasRole(c, entity.RoleAdmin), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "dish deleted", nil)
}

// POST /dishes/:id/image
func (h *DishController) UploadImage(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		resp.BadRequest(c, "could not read image")
		return
	}
	defer src.Close()

	url, err := h.Svc.UploadImage(
		c.Request.Context(),
		utils.CurrentUserID(c), utils.HasRole(c, entity.RoleAdmin),
		id, file.Filename, file.Header.Get("Content-Type"), src,
	)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "image uploaded", gin.H{"imageUrl": url})
}
