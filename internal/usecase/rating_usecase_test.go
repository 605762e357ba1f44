package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingFixture struct {
	users     *mocks.UserRepository
	hospitals *mocks.HospitalRepository
	ratings   *mocks.RatingRepository
	uc        RatingUsecase
}

func newRatingFixture() *ratingFixture {
	f := &ratingFixture{
		users:     new(mocks.UserRepository),
		hospitals: new(mocks.HospitalRepository),
		ratings:   new(mocks.RatingRepository),
	}
	f.uc = NewRatingUsecase(newTestLogger(), f.users, f.hospitals, f.ratings, mocks.NewAuditService())
	return f
}

func (f *ratingFixture) actingAs(user *entity.User) {
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
}

func TestRatingCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("user rates an existing hospital", func(t *testing.T) {
		f := newRatingFixture()
		user := newPlainUser()
		f.actingAs(user)
		f.hospitals.On("FindByID", mock.Anything, uint(2)).Return(&entity.Hospital{ID: 2, Name: "General"}, nil)
		f.ratings.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
			return r.UserID == user.ID && r.HospitalID == 2 && r.Star == 4
		})).Return(nil)

		resp, err := f.uc.Create(ctx, user.ID, &dto.CreateRatingRequest{HospitalID: 2, Content: "Great care", Star: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.Star)
		require.NotNil(t, resp.Hospital)
		assert.Equal(t, "General", resp.Hospital.Name)
		f.ratings.AssertExpectations(t)
	})

	t.Run("unknown hospital", func(t *testing.T) {
		f := newRatingFixture()
		user := newPlainUser()
		f.actingAs(user)
		f.hospitals.On("FindByID", mock.Anything, uint(2)).Return(nil, nil)

		_, err := f.uc.Create(ctx, user.ID, &dto.CreateRatingRequest{HospitalID: 2, Content: "x", Star: 4})
		requireDenied(t, err, http.StatusNotFound)
	})

	t.Run("admin goes to back office", func(t *testing.T) {
		f := newRatingFixture()
		admin := newAdmin()
		f.actingAs(admin)
		f.hospitals.On("FindByID", mock.Anything, uint(2)).Return(&entity.Hospital{ID: 2}, nil)

		_, err := f.uc.Create(ctx, admin.ID, &dto.CreateRatingRequest{HospitalID: 2, Content: "x", Star: 4})
		requireDenied(t, err, http.StatusOK)
		f.ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("star out of range", func(t *testing.T) {
		f := newRatingFixture()
		_, err := f.uc.Create(ctx, uuid.New(), &dto.CreateRatingRequest{HospitalID: 2, Content: "x", Star: 6})
		assert.ErrorIs(t, err, ErrInvalidStar)
	})
}

func TestRatingList_Scopes(t *testing.T) {
	ctx := context.Background()

	t.Run("user sees own", func(t *testing.T) {
		f := newRatingFixture()
		user := newPlainUser()
		f.actingAs(user)
		f.ratings.On("FindByUserID", mock.Anything, user.ID).Return([]entity.Rating{{ID: 1, UserID: user.ID}}, nil)

		got, err := f.uc.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("hospital sees its hospital", func(t *testing.T) {
		f := newRatingFixture()
		staff := newHospitalUser(3)
		f.actingAs(staff)
		f.ratings.On("FindByHospitalID", mock.Anything, uint(3)).Return([]entity.Rating{{ID: 1, HospitalID: 3}, {ID: 2, HospitalID: 3}}, nil)

		got, err := f.uc.List(ctx, staff.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("hospital account without hospital sees nothing", func(t *testing.T) {
		f := newRatingFixture()
		staff := &entity.User{ID: uuid.New(), RoleID: entity.RoleIDHospital}
		f.actingAs(staff)

		got, err := f.uc.List(ctx, staff.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRatingGetUpdateDelete_Ownership(t *testing.T) {
	ctx := context.Background()
	author := newPlainUser()
	stranger := newPlainUser()
	rating := func() *entity.Rating {
		return &entity.Rating{ID: 9, UserID: author.ID, HospitalID: 1, Content: "ok", Star: 3}
	}

	t.Run("author updates", func(t *testing.T) {
		f := newRatingFixture()
		f.actingAs(author)
		f.ratings.On("FindByID", mock.Anything, uint(9)).Return(rating(), nil)
		f.ratings.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
			return r.Star == 5 && r.Content == "better" && r.UserID == author.ID
		})).Return(nil)

		resp, err := f.uc.Update(ctx, author.ID, 9, &dto.UpdateRatingRequest{Content: "better", Star: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Star)
	})

	t.Run("stranger cannot read", func(t *testing.T) {
		f := newRatingFixture()
		f.actingAs(stranger)
		f.ratings.On("FindByID", mock.Anything, uint(9)).Return(rating(), nil)

		_, err := f.uc.Get(ctx, stranger.ID, 9)
		requireDenied(t, err, http.StatusForbidden)
	})

	t.Run("owning hospital reads", func(t *testing.T) {
		f := newRatingFixture()
		staff := newHospitalUser(1)
		f.actingAs(staff)
		f.ratings.On("FindByID", mock.Anything, uint(9)).Return(rating(), nil)

		resp, err := f.uc.Get(ctx, staff.ID, 9)
		require.NoError(t, err)
		assert.Equal(t, uint(9), resp.ID)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		f := newRatingFixture()
		f.actingAs(stranger)
		f.ratings.On("FindByID", mock.Anything, uint(9)).Return(rating(), nil)

		requireDenied(t, f.uc.Delete(ctx, stranger.ID, 9), http.StatusForbidden)
		f.ratings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing rating", func(t *testing.T) {
		f := newRatingFixture()
		f.actingAs(author)
		f.ratings.On("FindByID", mock.Anything, uint(9)).Return(nil, nil)

		assert.ErrorIs(t, f.uc.Delete(ctx, author.ID, 9), ErrRatingNotFound)
	})
}

func TestRatingAdminUpdate_ReassignsAuthor(t *testing.T) {
	ctx := context.Background()
	f := newRatingFixture()
	admin := newAdmin()
	newAuthor := newPlainUser()
	f.users.On("FindByID", mock.Anything, newAuthor.ID).Return(newAuthor, nil)
	f.ratings.On("FindByID", mock.Anything, uint(9)).Return(&entity.Rating{ID: 9, UserID: uuid.New(), HospitalID: 1, Star: 2}, nil)
	f.ratings.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.UserID == newAuthor.ID && r.Star == 3
	})).Return(nil)

	resp, err := f.uc.AdminUpdate(ctx, admin.ID, 9, &dto.AdminUpdateRatingRequest{Content: "edited", Star: 3, UserID: &newAuthor.ID})
	require.NoError(t, err)
	assert.Equal(t, newAuthor.ID, resp.UserID)
	f.ratings.AssertExpectations(t)
}

func TestRatingAdminUpdate_UnknownAuthor(t *testing.T) {
	f := newRatingFixture()
	missing := uuid.New()
	f.users.On("FindByID", mock.Anything, missing).Return(nil, nil)
	f.ratings.On("FindByID", mock.Anything, uint(9)).Return(&entity.Rating{ID: 9, UserID: uuid.New()}, nil)

	_, err := f.uc.AdminUpdate(context.Background(), uuid.New(), 9, &dto.AdminUpdateRatingRequest{Content: "x", Star: 3, UserID: &missing})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRatingHospitalSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("known hospital", func(t *testing.T) {
		f := newRatingFixture()
		f.hospitals.On("FindByID", mock.Anything, uint(1)).Return(&entity.Hospital{ID: 1}, nil)
		f.ratings.On("SummaryByHospital", mock.Anything, uint(1)).Return(&repository.RatingSummary{
			Total:   3,
			Average: decimal.RequireFromString("3.67"),
		}, nil)

		got, err := f.uc.HospitalSummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Total)
		assert.Equal(t, "3.67", got.Average.String())
	})

	t.Run("unknown hospital", func(t *testing.T) {
		f := newRatingFixture()
		f.hospitals.On("FindByID", mock.Anything, uint(1)).Return(nil, nil)

		_, err := f.uc.HospitalSummary(ctx, 1)
		assert.ErrorIs(t, err, ErrHospitalNotFound)
	})
}
