package revealdown

import "errors"

var (
	ErrUnknownFormat     = errors.New("no matching source converter")
	ErrUnknownEngine     = errors.New("unknown markdown engine")
	ErrInvalidSlideLevel = errors.New("slide level must be at least 1")
	ErrFrontMatter       = errors.New("invalid front matter")
)
