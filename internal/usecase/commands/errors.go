package commands

import (
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"
)

var (
	// ErrValidation marks input rejected by a domain constructor
	ErrValidation        = errs.New("validation failed")
	ErrEmailTaken        = errs.New("email already registered")
	ErrSlugTaken         = errs.New("slug already taken")
	ErrGridPositionTaken = errs.New("grid position already taken")
	ErrParentNotFound    = errs.New("parent comment not found")
)

func invalid(err error) error {
	return errs.Mark(err, ErrValidation)
}

// notFound marks a repository NOT_FOUND with the caller's sentinel and passes anything else through.
func notFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
