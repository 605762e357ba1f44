package usecase

import (
	"context"
	"errors"
	"strconv"

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
	ErrRateReplyNotFound = errors.New("reply not found")
)

type RateReplyUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.RateReplyResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateRateReplyRequest) (*dto.RateReplyResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateRateReplyRequest) (*dto.RateReplyResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
	AdminDelete(ctx context.Context, adminID uuid.UUID, id uint) error
}

type rateReplyUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	ratingRepo   repository.RatingRepository
	replyRepo    repository.RateReplyRepository
	auditService service.AuditService
}

func NewRateReplyUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	replyRepo repository.RateReplyRepository,
	auditService service.AuditService,
) RateReplyUsecase {
	return &rateReplyUsecase{
		log:          log,
		userRepo:     userRepo,
		ratingRepo:   ratingRepo,
		replyRepo:    replyRepo,
		auditService: auditService,
	}
}

func (u *rateReplyUsecase) List(ctx context.Context, userID uuid.UUID) ([]dto.RateReplyResponse, error) {
	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(actor, policy.ActionList, policy.Resource{Type: policy.ResourceRateReply})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	var replies []entity.RateReply
	switch decision.Scope {
	case policy.ScopeAll:
		replies, err = u.replyRepo.FindAll(ctx)
	case policy.ScopeHospital:
		if actor.HospitalID != nil {
			replies, err = u.replyRepo.FindByHospitalID(ctx, *actor.HospitalID)
		}
	}
	if err != nil {
		u.log.Warnf("Failed to list replies: %+v", err)
		return nil, err
	}

	return converter.RateRepliesToResponses(replies), nil
}

func (u *rateReplyUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateRateReplyRequest) (*dto.RateReplyResponse, error) {
	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	rating, err := u.ratingRepo.FindByID(ctx, req.RateID)
	if err != nil {
		u.log.Warnf("Failed to find rating: %+v", err)
		return nil, err
	}

	res := policy.Resource{Type: policy.ResourceRateReply, ParentFound: rating != nil}
	if rating != nil {
		res.HospitalID = rating.HospitalID
	}
	if err := policy.Decide(actor, policy.ActionCreate, res).Err(); err != nil {
		return nil, err
	}

	// the reply belongs to the rating's hospital, whatever the request says
	reply := &entity.RateReply{
		RateID:     rating.ID,
		HospitalID: rating.HospitalID,
		Content:    req.Content,
	}
	if err := u.replyRepo.Create(ctx, reply); err != nil {
		u.log.Warnf("Failed to create reply: %+v", err)
		return nil, err
	}

	response := converter.RateReplyToResponse(reply)
	_ = u.auditService.LogCreate(ctx, &actor.UserID, entity.AuditActionRateReplyCreate, "rate_reply", idString(reply.ID), response)

	return response, nil
}

func (u *rateReplyUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateRateReplyRequest) (*dto.RateReplyResponse, error) {
	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	reply, err := u.findReply(ctx, id)
	if err != nil {
		return nil, err
	}

	res := policy.Resource{Type: policy.ResourceRateReply, HospitalID: reply.HospitalID}
	if err := policy.Decide(actor, policy.ActionUpdate, res).Err(); err != nil {
		return nil, err
	}

	oldValue := converter.RateReplyToResponse(reply)
	reply.Content = req.Content
	reply.HospitalID = *actor.HospitalID

	if err := u.replyRepo.Update(ctx, reply); err != nil {
		u.log.Warnf("Failed to update reply: %+v", err)
		return nil, err
	}

	response := converter.RateReplyToResponse(reply)
	_ = u.auditService.LogUpdate(ctx, &actor.UserID, entity.AuditActionRateReplyUpdate, "rate_reply", idString(reply.ID), oldValue, response)

	return response, nil
}

func (u *rateReplyUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	_, actor, err := resolveActor(ctx, u.userRepo, userID)
	if err != nil {
		return err
	}

	reply, err := u.findReply(ctx, id)
	if err != nil {
		return err
	}

	res := policy.Resource{Type: policy.ResourceRateReply, HospitalID: reply.HospitalID}
	if err := policy.Decide(actor, policy.ActionDelete, res).Err(); err != nil {
		return err
	}

	return u.delete(ctx, actor.UserID, reply)
}

// AdminDelete is the back-office moderation path; callers are already restricted to admins.
func (u *rateReplyUsecase) AdminDelete(ctx context.Context, adminID uuid.UUID, id uint) error {
	reply, err := u.findReply(ctx, id)
	if err != nil {
		return err
	}
	return u.delete(ctx, adminID, reply)
}

func (u *rateReplyUsecase) delete(ctx context.Context, actorID uuid.UUID, reply *entity.RateReply) error {
	if err := u.replyRepo.Delete(ctx, reply.ID); err != nil {
		u.log.Warnf("Failed to delete reply: %+v", err)
		return err
	}

	_ = u.auditService.LogDelete(ctx, &actorID, entity.AuditActionRateReplyDelete, "rate_reply", idString(reply.ID), converter.RateReplyToResponse(reply))
	return nil
}

func (u *rateReplyUsecase) findReply(ctx context.Context, id uint) (*entity.RateReply, error) {
	reply, err := u.replyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find reply: %+v", err)
		return nil, err
	}
	if reply == nil {
		return nil, ErrRateReplyNotFound
	}
	return reply, nil
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
