package brand

import "errors"

var (
	ErrLogoRequired = errors.New("logo is required")
	ErrNameTaken    = errors.New("a brand with this name already exists")
)
