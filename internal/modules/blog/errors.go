package blog

import "errors"

var (
	ErrNotAllowed  = errors.New("only the author or an admin can modify this post")
	ErrSlugTaken   = errors.New("a post with this slug already exists")
	ErrBadAuthorID = errors.New("malformed author id")
)
