package car

import "errors"

var (
	ErrPhotosRequired   = errors.New("at least one photo is required")
	ErrTooManyPhotos    = errors.New("a car can carry at most 10 photos")
	ErrBrandRequired    = errors.New("at least one brand is required")
	ErrImporterRequired = errors.New("an importer is required")
	ErrInvalidBodyType  = errors.New("unknown body type")
)
