package usecase

import (
	"context"
	"errors"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/converter"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/policy"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRatingNotFound   = errors.New("rating not found")
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrInvalidStar      = errors.New("star must be between 1 and 5")
)

type RatingUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.RatingResponse, error)
	Get(ctx context.Context, userID uuid.UUID, id uint) (*dto.RatingResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateRatingRequest) (*dto.RatingResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
	HospitalSummary(ctx context.Context, hospitalID uint) (*dto.RatingSummaryResponse, error)

	AdminList(ctx context.Context) ([]dto.RatingResponse, error)
	AdminUpdate(ctx context.Context, adminID uuid.UUID, id uint, req *dto.AdminUpdateRatingRequest) (*dto.RatingResponse, error)
	AdminDelete(ctx context.Context, adminID uuid.UUID, id uint) error
}

type ratingUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	ratingRepo   repository.RatingRepository
	auditService service.AuditService
}

func NewRatingUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	ratingRepo repository.RatingRepository,
	auditService service.AuditService,
) RatingUsecase {
	return &ratingUsecase{
		log:          log,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		ratingRepo:   ratingRepo,
		auditService: auditService,
	}
}

func (u *ratingUsecase) List(ctx context.Context, userID uuid.UUID) ([]dto.RatingResponse, error) {
	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(actor, policy.ActionList, policy.Resource{Type: policy.ResourceRating})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	var ratings []entity.Rating
	switch decision.Scope {
	case policy.ScopeAll:
		ratings, err = u.ratingRepo.FindAll(ctx)
	case policy.ScopeHospital:
		if actor.HospitalID != nil {
			ratings, err = u.ratingRepo.FindByHospitalID(ctx, *actor.HospitalID)
		}
	case policy.ScopeOwn:
		ratings, err = u.ratingRepo.FindByUserID(ctx, actor.UserID)
	}
	if err != nil {
		u.log.Warnf("Failed to list ratings: %+v", err)
		return nil, err
	}

	return converter.RatingsToResponses(ratings), nil
}

func (u *ratingUsecase) Get(ctx context.Context, userID uuid.UUID, id uint) (*dto.RatingResponse, error) {
	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	rating, err := u.findRating(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(actor, policy.ActionRead, ratingResource(rating)).Err(); err != nil {
		return nil, err
	}

	return converter.RatingToResponse(rating), nil
}

func (u *ratingUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	if !entity.ValidStar(req.Star) {
		return nil, ErrInvalidStar
	}

	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByID(ctx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}

	res := policy.Resource{Type: policy.ResourceRating, HospitalID: req.HospitalID, ParentFound: hospital != nil}
	if err := policy.Decide(actor, policy.ActionCreate, res).Err(); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		UserID:     actor.UserID,
		HospitalID: hospital.ID,
		Content:    req.Content,
		Star:       req.Star,
	}
	if err := u.ratingRepo.Create(ctx, rating); err != nil {
		u.log.Warnf("Failed to create rating: %+v", err)
		return nil, err
	}
	rating.Hospital = *hospital

	response := converter.RatingToResponse(rating)
	_ = u.auditService.LogCreate(ctx, &actor.UserID, entity.AuditActionRatingCreate, "rating", idString(rating.ID), response)

	return response, nil
}

func (u *ratingUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	if !entity.ValidStar(req.Star) {
		return nil, ErrInvalidStar
	}

	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	rating, err := u.findRating(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(actor, policy.ActionUpdate, ratingResource(rating)).Err(); err != nil {
		return nil, err
	}

	return u.update(ctx, actor.UserID, rating, rating.UserID, req.Content, req.Star)
}

func (u *ratingUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return err
	}

	rating, err := u.findRating(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Decide(actor, policy.ActionDelete, ratingResource(rating)).Err(); err != nil {
		return err
	}

	return u.delete(ctx, actor.UserID, rating)
}

func (u *ratingUsecase) HospitalSummary(ctx context.Context, hospitalID uint) (*dto.RatingSummaryResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	summary, err := u.ratingRepo.SummaryByHospital(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to summarize ratings: %+v", err)
		return nil, err
	}

	return &dto.RatingSummaryResponse{
		HospitalID: hospitalID,
		Total:      summary.Total,
		Average:    summary.Average,
	}, nil
}

func (u *ratingUsecase) AdminList(ctx context.Context) ([]dto.RatingResponse, error) {
	ratings, err := u.ratingRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list ratings: %+v", err)
		return nil, err
	}
	return converter.RatingsToResponses(ratings), nil
}

func (u *ratingUsecase) AdminUpdate(ctx context.Context, adminID uuid.UUID, id uint, req *dto.AdminUpdateRatingRequest) (*dto.RatingResponse, error) {
	if !entity.ValidStar(req.Star) {
		return nil, ErrInvalidStar
	}

	rating, err := u.findRating(ctx, id)
	if err != nil {
		return nil, err
	}

	authorID := rating.UserID
	if req.UserID != nil && *req.UserID != rating.UserID {
		author, err := u.userRepo.FindByID(ctx, *req.UserID)
		if err != nil {
			u.log.Warnf("Failed to find user by ID: %+v", err)
			return nil, err
		}
		if author == nil {
			return nil, ErrUserNotFound
		}
		authorID = author.ID
		rating.User = *author
	}

	return u.update(ctx, adminID, rating, authorID, req.Content, req.Star)
}

func (u *ratingUsecase) AdminDelete(ctx context.Context, adminID uuid.UUID, id uint) error {
	rating, err := u.findRating(ctx, id)
	if err != nil {
		return err
	}
	return u.delete(ctx, adminID, rating)
}

func (u *ratingUsecase) update(ctx context.Context, actorID uuid.UUID, rating *entity.Rating, authorID uuid.UUID, content string, star int) (*dto.RatingResponse, error) {
	oldValue := converter.RatingToResponse(rating)

	rating.UserID = authorID
	rating.Content = content
	rating.Star = star

	if err := u.ratingRepo.Update(ctx, rating); err != nil {
		u.log.Warnf("Failed to update rating: %+v", err)
		return nil, err
	}

	response := converter.RatingToResponse(rating)
	_ = u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionRatingUpdate, "rating", idString(rating.ID), oldValue, response)

	return response, nil
}

// delete removes the rating; its replies go with it through the foreign key cascade.
func (u *ratingUsecase) delete(ctx context.Context, actorID uuid.UUID, rating *entity.Rating) error {
	if err := u.ratingRepo.Delete(ctx, rating.ID); err != nil {
		u.log.Warnf("Failed to delete rating: %+v", err)
		return err
	}

	_ = u.auditService.LogDelete(ctx, &actorID, entity.AuditActionRatingDelete, "rating", idString(rating.ID), converter.RatingToResponse(rating))
	return nil
}

func (u *ratingUsecase) findRating(ctx context.Context, id uint) (*entity.Rating, error) {
	rating, err := u.ratingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find rating: %+v", err)
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}
	return rating, nil
}

func ratingResource(rating *entity.Rating) policy.Resource {
	return policy.Resource{
		Type:       policy.ResourceRating,
		AuthorID:   rating.UserID,
		HospitalID: rating.HospitalID,
	}
}
