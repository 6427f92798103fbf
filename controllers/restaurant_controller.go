package controllers

import (
	"strconv"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants?cityId=&page=&limit=
func (h *RestaurantController) List(c *gin.Context) {
	page, limit := utils.Pagination(c)
	cityID, _ := strconv.ParseUint(c.DefaultQuery("cityId", "0"), 10, 64)
	out, err := h.Svc.List(uint(cityID), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "restaurants", out)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	r, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "restaurant", r)
}

// POST /restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "restaurant created", r)
}

// PATCH /restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var req services.UpdateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := h.Svc.Update(utils.CurrentUserID(c), utils.HasRole(c, entity.RoleAdmin), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "restaurant updated", r)
}

// DELETE /restaurants/:id
func (h *RestaurantController) Delete(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), utils.HasRole(c, entity.RoleAdmin), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "restaurant deleted", nil)
}

// POST /restaurants/:id/image
func (h *RestaurantController) UploadImage(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
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
