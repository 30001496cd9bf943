package catalog

import "errors"

var (
	ErrItemIDNotInteger = errors.New("item_id must be an integer")
)
