package policy

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hospitalID(id uint) *uint { return &id }

func TestDecide_RateReplyList(t *testing.T) {
	tests := []struct {
		name      string
		actor     Actor
		wantScope Scope
		allowed   bool
	}{
		{"admin sees all", Actor{Role: RoleAdmin}, ScopeAll, true},
		{"hospital sees own hospital", Actor{Role: RoleHospital, HospitalID: hospitalID(3)}, ScopeHospital, true},
		{"user sees nothing", Actor{Role: RoleUser}, ScopeNone, true},
		{"no role is denied", Actor{}, ScopeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.actor, ActionList, Resource{Type: ResourceRateReply})
			assert.Equal(t, tt.allowed, d.Allowed)
			if tt.allowed {
				assert.Equal(t, tt.wantScope, d.Scope)
			} else {
				assert.Equal(t, http.StatusForbidden, d.Code)
			}
		})
	}
}

func TestDecide_RateReplyCreate(t *testing.T) {
	tests := []struct {
		name     string
		actor    Actor
		res      Resource
		allowed  bool
		wantCode int
		reason   string
	}{
		{
			name:     "admin is sent to the back office",
			actor:    Actor{Role: RoleAdmin},
			res:      Resource{Type: ResourceRateReply, HospitalID: 1, ParentFound: true},
			wantCode: http.StatusOK,
			reason:   ReasonBackOffice,
		},
		{
			name:     "admin is sent to the back office even without a rating",
			actor:    Actor{Role: RoleAdmin},
			res:      Resource{Type: ResourceRateReply},
			wantCode: http.StatusOK,
			reason:   ReasonBackOffice,
		},
		{
			name:     "hospital with missing rating",
			actor:    Actor{Role: RoleHospital, HospitalID: hospitalID(1)},
			res:      Resource{Type: ResourceRateReply, ParentFound: false},
			wantCode: http.StatusNotFound,
			reason:   ReasonRatingNotFound,
		},
		{
			name:    "hospital replying to its own rating",
			actor:   Actor{Role: RoleHospital, HospitalID: hospitalID(1)},
			res:     Resource{Type: ResourceRateReply, HospitalID: 1, ParentFound: true},
			allowed: true,
		},
		{
			name:     "hospital replying to another hospital's rating",
			actor:    Actor{Role: RoleHospital, HospitalID: hospitalID(2)},
			res:      Resource{Type: ResourceRateReply, HospitalID: 1, ParentFound: true},
			wantCode: http.StatusForbidden,
			reason:   ReasonNotAllowed,
		},
		{
			name:     "hospital account without a hospital",
			actor:    Actor{Role: RoleHospital},
			res:      Resource{Type: ResourceRateReply, HospitalID: 1, ParentFound: true},
			wantCode: http.StatusForbidden,
			reason:   ReasonNotAllowed,
		},
		{
			name:     "plain user",
			actor:    Actor{Role: RoleUser},
			res:      Resource{Type: ResourceRateReply, HospitalID: 1, ParentFound: true},
			wantCode: http.StatusForbidden,
			reason:   ReasonNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.actor, ActionCreate, tt.res)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.wantCode, d.Code)
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

// A hospital may mutate a reply iff the reply belongs to its hospital; every
// other pairing is forbidden.
func TestDecide_RateReplyMutationOwnership(t *testing.T) {
	actors := []Actor{
		{Role: RoleAdmin},
		{Role: RoleAdmin, HospitalID: hospitalID(1)},
		{Role: RoleHospital, HospitalID: hospitalID(1)},
		{Role: RoleHospital, HospitalID: hospitalID(2)},
		{Role: RoleHospital},
		{Role: RoleUser, HospitalID: hospitalID(1)},
		{},
	}
	replyHospitals := []uint{1, 2, 3}

	for _, action := range []Action{ActionUpdate, ActionDelete} {
		for _, actor := range actors {
			for _, h := range replyHospitals {
				d := Decide(actor, action, Resource{Type: ResourceRateReply, HospitalID: h})
				want := actor.Role == RoleHospital && actor.HospitalID != nil && *actor.HospitalID == h
				assert.Equal(t, want, d.Allowed, "action=%s role=%q reply hospital=%d", action, actor.Role, h)
				if !want {
					assert.Equal(t, http.StatusForbidden, d.Code)
				}
			}
		}
	}
}

func TestDecide_AdminBlockedFromReplyMutationButListsAll(t *testing.T) {
	admin := Actor{Role: RoleAdmin, UserID: uuid.New()}

	assert.True(t, Decide(admin, ActionList, Resource{Type: ResourceRateReply}).Allowed)
	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		d := Decide(admin, action, Resource{Type: ResourceRateReply, HospitalID: 1, ParentFound: true})
		assert.False(t, d.Allowed, "action %s", action)
	}
}

func TestDecide_Rating(t *testing.T) {
	author := uuid.New()
	other := uuid.New()

	tests := []struct {
		name     string
		actor    Actor
		action   Action
		res      Resource
		allowed  bool
		wantCode int
	}{
		{"user creates for existing hospital", Actor{Role: RoleUser, UserID: author}, ActionCreate, Resource{Type: ResourceRating, ParentFound: true}, true, 0},
		{"user creates for unknown hospital", Actor{Role: RoleUser, UserID: author}, ActionCreate, Resource{Type: ResourceRating}, false, http.StatusNotFound},
		{"hospital cannot create", Actor{Role: RoleHospital, HospitalID: hospitalID(1)}, ActionCreate, Resource{Type: ResourceRating, ParentFound: true}, false, http.StatusForbidden},
		{"admin goes to back office", Actor{Role: RoleAdmin}, ActionCreate, Resource{Type: ResourceRating, ParentFound: true}, false, http.StatusOK},
		{"author reads", Actor{Role: RoleUser, UserID: author}, ActionRead, Resource{Type: ResourceRating, AuthorID: author, HospitalID: 1}, true, 0},
		{"stranger cannot read", Actor{Role: RoleUser, UserID: other}, ActionRead, Resource{Type: ResourceRating, AuthorID: author, HospitalID: 1}, false, http.StatusForbidden},
		{"owning hospital reads", Actor{Role: RoleHospital, HospitalID: hospitalID(1)}, ActionRead, Resource{Type: ResourceRating, AuthorID: author, HospitalID: 1}, true, 0},
		{"other hospital cannot read", Actor{Role: RoleHospital, HospitalID: hospitalID(2)}, ActionRead, Resource{Type: ResourceRating, AuthorID: author, HospitalID: 1}, false, http.StatusForbidden},
		{"admin reads", Actor{Role: RoleAdmin}, ActionRead, Resource{Type: ResourceRating, AuthorID: author, HospitalID: 1}, true, 0},
		{"author updates", Actor{Role: RoleUser, UserID: author}, ActionUpdate, Resource{Type: ResourceRating, AuthorID: author}, true, 0},
		{"stranger cannot delete", Actor{Role: RoleUser, UserID: other}, ActionDelete, Resource{Type: ResourceRating, AuthorID: author}, false, http.StatusForbidden},
		{"hospital cannot update", Actor{Role: RoleHospital, HospitalID: hospitalID(1)}, ActionUpdate, Resource{Type: ResourceRating, AuthorID: author, HospitalID: 1}, false, http.StatusForbidden},
		{"admin cannot delete through the api", Actor{Role: RoleAdmin}, ActionDelete, Resource{Type: ResourceRating, AuthorID: author}, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.actor, tt.action, tt.res)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.wantCode, d.Code)
			}
		})
	}
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, allow(ScopeAll).Err())

	err := forbidden().Err()
	require.Error(t, err)

	var denied *DeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, http.StatusForbidden, denied.Code)
	assert.Equal(t, ReasonNotAllowed, denied.Reason)
}

func TestDecide_UnknownResource(t *testing.T) {
	d := Decide(Actor{Role: RoleAdmin}, ActionList, Resource{Type: "hospital"})
	assert.False(t, d.Allowed)
	assert.Equal(t, http.StatusForbidden, d.Code)
}
