package heroslide

type CreateHeroSlideRequest struct {
	TitleEn       string `form:"title_en" validate:"required"`
	TitleAr       string `form:"title_ar"`
	DescriptionEn string `form:"description_en"`
	DescriptionAr string `form:"description_ar"`
	Order         int    `form:"order"`
	IsActive      bool   `form:"isActive"`
	ButtonTextEn  string `form:"buttonText_en"`
	ButtonTextAr  string `form:"buttonText_ar"`
	ButtonLink    string `form:"buttonLink"`
}

type UpdateHeroSlideRequest struct {
	TitleEn       *string `form:"title_en"`
	TitleAr       *string `form:"title_ar"`
	DescriptionEn *string `form:"description_en"`
	DescriptionAr *string `form:"description_ar"`
	Order         *int    `form:"order"`
	IsActive      *bool   `form:"isActive"`
	ButtonTextEn  *string `form:"buttonText_en"`
	ButtonTextAr  *string `form:"buttonText_ar"`
	ButtonLink    *string `form:"buttonLink"`
}
