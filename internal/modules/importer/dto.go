package importer

type CreateImporterRequest struct {
	Name      string   `form:"name" validate:"required"`
	Address   string   `form:"address" validate:"required"`
	Telephone string   `form:"telephone" validate:"required"`
	Email     string   `form:"email" validate:"required,email"`
	Brands    []string `form:"brands"`
}

type UpdateImporterRequest struct {
	Name      *string  `form:"name"`
	Address   *string  `form:"address"`
	Telephone *string  `form:"telephone"`
	Email     *string  `form:"email"`
	Brands    []string `form:"brands"`
}
