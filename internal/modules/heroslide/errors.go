package heroslide

import "errors"

var ErrImageRequired = errors.New("a slide image is required")
