package converter

import (
	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/domain/entity"
)

func AccountToUserResponse(account *entity.Account) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    account.ID,
		Email: account.Email,
	}
}
