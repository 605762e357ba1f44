package converter

import (
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
)

// RatingToResponse converts a Rating entity to RatingResponse DTO
func RatingToResponse(rating *entity.Rating) *dto.RatingResponse {
	if rating == nil {
		return nil
	}

	response := &dto.RatingResponse{
		ID:         rating.ID,
		UserID:     rating.UserID,
		UserName:   rating.User.Name,
		HospitalID: rating.HospitalID,
		Hospital:   HospitalToResponse(&rating.Hospital),
		Content:    rating.Content,
		Star:       rating.Star,
		CreatedAt:  rating.CreatedAt,
		UpdatedAt:  rating.UpdatedAt,
	}

	if len(rating.Replies) > 0 {
		response.Replies = RateRepliesToResponses(rating.Replies)
	}

	return response
}

// RatingsToResponses converts a slice of Rating entities to RatingResponse DTOs
func RatingsToResponses(ratings []entity.Rating) []dto.RatingResponse {
	responses := make([]dto.RatingResponse, len(ratings))
	for i := range ratings {
		responses[i] = *RatingToResponse(&ratings[i])
	}
	return responses
}
