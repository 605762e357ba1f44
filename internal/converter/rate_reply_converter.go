package converter

import (
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
)

func RateReplyToResponse(reply *entity.RateReply) *dto.RateReplyResponse {
	if reply == nil {
		return nil
	}

	return &dto.RateReplyResponse{
		ID:         reply.ID,
		RateID:     reply.RateID,
		HospitalID: reply.HospitalID,
		Content:    reply.Content,
		CreatedAt:  reply.CreatedAt,
		UpdatedAt:  reply.UpdatedAt,
	}
}

func RateRepliesToResponses(replies []entity.RateReply) []dto.RateReplyResponse {
	responses := make([]dto.RateReplyResponse, len(replies))
	for i := range replies {
		responses[i] = *RateReplyToResponse(&replies[i])
	}
	return responses
}
