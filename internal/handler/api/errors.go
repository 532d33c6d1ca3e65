package api

import (
	"net/http"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/reservation"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Messages the booking flow promises to clients verbatim.
const (
	MsgSpotUnavailable   = "Camping spot is not available"
	MsgOverlap           = "Camping spot is already booked for these dates"
	MsgInvalidTransition = "Invalid status transition"
	MsgGridPositionTaken = "Grid position already taken"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: the booking outcomes are checked before the generic validation mark they may also carry.
var errorMappings = []errorMapping{
	{reservation.ErrSpotUnavailable, http.StatusBadRequest, MsgSpotUnavailable},
	{reservation.ErrOverlap, http.StatusBadRequest, MsgOverlap},
	{reservation.ErrInvalidTransition, http.StatusBadRequest, MsgInvalidTransition},
	{commands.ErrGridPositionTaken, http.StatusConflict, MsgGridPositionTaken},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{commands.ErrSlugTaken, http.StatusConflict, "Slug already taken"},

	{policy.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
	{policy.ErrForbidden, http.StatusForbidden, "You are not allowed to perform this action"},

	{queries.ErrCampingNotFound, http.StatusNotFound, "Camping not found"},
	{queries.ErrSpotNotFound, http.StatusNotFound, "Camping spot not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{commands.ErrParentNotFound, http.StatusBadRequest, "Parent comment not found"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{commands.ErrValidation, http.StatusBadRequest, ""},
}

// abortWithUsecaseError translates an error returned by commands or queries into the JSON error body.
// Validation errors surface the domain message, which is safe to show.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		msg := m.message
		var detail any
		if m.target == commands.ErrValidation {
			msg = "Validation failed"
			detail = []httperr.FieldError{{Message: errs.Cause(err).Error()}}
		}
		httperr.AbortWithError(c, m.status, err, msg, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// respondMapped writes the mapped view; a mapping failure is answered as an internal error.
func respondMapped[V, R any](c *gin.Context, status int, v V, mapFn func(V) (R, error)) {
	body, err := mapFn(v)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, body)
}
