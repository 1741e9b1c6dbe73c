package brand

type CreateBrandRequest struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	IsActive    bool   `form:"isActive"`
}

type UpdateBrandRequest struct {
	Name        *string `form:"name"`
	Description *string `form:"description"`
	IsActive    *bool   `form:"isActive"`
}
