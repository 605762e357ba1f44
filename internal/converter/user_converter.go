package converter

import (
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// profileURL maps the stored image key to a public URL and may be nil.
func UserToResponse(user *entity.User, profileURL func(string) string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Gender:     user.Gender,
		Phone:      user.Phone,
		Profile:    user.Profile,
		Role:       user.RoleName(),
		HospitalID: user.HospitalID,
		Hospital:   HospitalToResponse(user.Hospital),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if profileURL != nil && user.Profile != "" {
		response.Profile = profileURL(user.Profile)
	}

	return response
}

func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil || hospital.ID == 0 {
		return nil
	}
	return &dto.HospitalResponse{
		ID:      hospital.ID,
		Name:    hospital.Name,
		Address: hospital.Address,
	}
}
