package car

type CreateCarRequest struct {
	Model         string   `form:"model" validate:"required"`
	Type          string   `form:"type" validate:"required"`
	Price         string   `form:"price" validate:"required"`
	DescriptionEn string   `form:"description_en"`
	DescriptionAr string   `form:"description_ar"`
	Brands        []string `form:"brands"`
	Importer      string   `form:"importer"`
}

type UpdateCarRequest struct {
	Model         *string  `form:"model"`
	Type          *string  `form:"type"`
	Price         *string  `form:"price"`
	DescriptionEn *string  `form:"description_en"`
	DescriptionAr *string  `form:"description_ar"`
	Brands        []string `form:"brands"`
	Importer      *string  `form:"importer"`

	// ExistingPhotos lists the current photo references to retain. It only
	// takes effect when ReplacePhotos is set, so an update that never mentions
	// photos leaves them untouched.
	ExistingPhotos []string `form:"-"`
	ReplacePhotos  bool     `form:"-"`
}

// SearchQuery carries the search filters. The frontend sends literal
// "all-types" / "all-makes" / "all-models" values for unset dropdowns.
type SearchQuery struct {
	Type  string `form:"type"`
	Brand string `form:"brand"`
	Model string `form:"model"`
}

const (
	wildcardType  = "all-types"
	wildcardBrand = "all-makes"
	wildcardModel = "all-models"
)
