package slugs

import (
	"context"
	"fmt"

	"campsite-booking/internal/pkg/errs"

	"github.com/gosimple/slug"
)

const maxSuffix = 1000

var ErrNoFreeSlug = errs.New(fmt.Sprintf("no free slug after %d attempts", maxSuffix))

// Make returns the URL-safe form of s; an input with no usable characters yields "camping".
func Make(s string) string {
	base := slug.Make(s)
	if base == "" {
		return "camping"
	}
	return base
}

// Unique appends -1, -2, ... to the slug of name until taken reports false.
func Unique(ctx context.Context, name string, taken func(ctx context.Context, candidate string) (bool, error)) (string, error) {
	base := Make(name)
	candidate := base
	for i := 1; i <= maxSuffix; i++ {
		exists, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrNoFreeSlug
}
