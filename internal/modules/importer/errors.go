package importer

import "errors"

var ErrBrandRequired = errors.New("at least one brand is required")
