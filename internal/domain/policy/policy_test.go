//go:build unit

package policy_test

import (
	"testing"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type actors struct {
	guest     policy.Actor
	owner     policy.Actor
	stranger  policy.Actor
	admin     policy.Actor
	anonymous policy.Actor
}

func newActors() actors {
	return actors{
		guest:    policy.NewActor(uuid.New(), user.RoleGuest),
		owner:    policy.NewActor(uuid.New(), user.RoleOwner),
		stranger: policy.NewActor(uuid.New(), user.RoleOwner),
		admin:    policy.NewActor(uuid.New(), user.RoleAdmin),
	}
}

func TestReservationPolicy(t *testing.T) {
	a := newActors()
	res := policy.Reservation{GuestID: a.guest.UserID, CampingOwnerID: a.owner.UserID}

	cases := []struct {
		name   string
		actor  policy.Actor
		action policy.Action
		want   bool
	}{
		{"guest views own", a.guest, policy.ActionView, true},
		{"owner views", a.owner, policy.ActionView, true},
		{"admin views", a.admin, policy.ActionView, true},
		{"stranger cannot view", a.stranger, policy.ActionView, false},
		{"anonymous cannot view", a.anonymous, policy.ActionView, false},
		{"guest cancels", a.guest, policy.ActionCancel, true},
		{"owner cancels", a.owner, policy.ActionCancel, true},
		{"admin cannot cancel", a.admin, policy.ActionCancel, false},
		{"guest cannot confirm", a.guest, policy.ActionChangeStatus, false},
		{"owner changes status", a.owner, policy.ActionChangeStatus, true},
		{"stranger cannot change status", a.stranger, policy.ActionChangeStatus, false},
		{"owner deletes", a.owner, policy.ActionDelete, true},
		{"guest cannot delete", a.guest, policy.ActionDelete, false},
		{"anonymous cannot create", a.anonymous, policy.ActionCreate, false},
		{"guest creates", a.guest, policy.ActionCreate, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, policy.ReservationPolicy(c.actor, res, c.action).Allowed())
		})
	}
}

func TestCampingPolicy(t *testing.T) {
	a := newActors()
	c := policy.Camping{OwnerID: a.owner.UserID}

	assert.True(t, policy.CampingPolicy(a.anonymous, c, policy.ActionView).Allowed())
	assert.True(t, policy.CampingPolicy(a.owner, c, policy.ActionCreate).Allowed())
	assert.True(t, policy.CampingPolicy(a.admin, c, policy.ActionCreate).Allowed())
	assert.False(t, policy.CampingPolicy(a.guest, c, policy.ActionCreate).Allowed())
	assert.True(t, policy.CampingPolicy(a.owner, c, policy.ActionUpdate).Allowed())
	assert.False(t, policy.CampingPolicy(a.stranger, c, policy.ActionUpdate).Allowed())
	assert.False(t, policy.CampingPolicy(a.admin, c, policy.ActionDelete).Allowed())
	assert.True(t, policy.CampingPolicy(a.owner, c, policy.ActionListBookings).Allowed())
	assert.True(t, policy.CampingPolicy(a.admin, c, policy.ActionListBookings).Allowed())
	assert.False(t, policy.CampingPolicy(a.guest, c, policy.ActionListBookings).Allowed())
}

func TestSpotPolicy(t *testing.T) {
	a := newActors()
	s := policy.Spot{CampingOwnerID: a.owner.UserID}

	assert.True(t, policy.SpotPolicy(a.anonymous, s, policy.ActionView).Allowed())
	assert.True(t, policy.SpotPolicy(a.owner, s, policy.ActionCreate).Allowed())
	assert.False(t, policy.SpotPolicy(a.stranger, s, policy.ActionCreate).Allowed())
	assert.False(t, policy.SpotPolicy(a.guest, s, policy.ActionDelete).Allowed())
}

func TestCommentPolicy(t *testing.T) {
	a := newActors()
	c := policy.Comment{AuthorID: a.guest.UserID, CampingOwnerID: a.owner.UserID}

	assert.True(t, policy.CommentPolicy(a.anonymous, c, policy.ActionView).Allowed())
	assert.False(t, policy.CommentPolicy(a.anonymous, c, policy.ActionCreate).Allowed())
	assert.True(t, policy.CommentPolicy(a.guest, c, policy.ActionUpdate).Allowed())
	assert.False(t, policy.CommentPolicy(a.owner, c, policy.ActionUpdate).Allowed())
	assert.True(t, policy.CommentPolicy(a.owner, c, policy.ActionDelete).Allowed())
	assert.True(t, policy.CommentPolicy(a.admin, c, policy.ActionDelete).Allowed())
	assert.False(t, policy.CommentPolicy(a.stranger, c, policy.ActionDelete).Allowed())
}

func TestDecision_Err(t *testing.T) {
	a := newActors()

	assert.NoError(t, policy.Allow.Err(a.guest))
	assert.ErrorIs(t, policy.Deny.Err(a.guest), policy.ErrForbidden)
	assert.ErrorIs(t, policy.Deny.Err(a.anonymous), policy.ErrUnauthenticated)
}
