package mapper

import (
	"strings"

	"event-portal/core/utils"
	"event-portal/modules/auth/dto"
	"event-portal/modules/auth/entity"
)

func ToUserEntity(req *dto.RegisterUserRequest, passwordHash string) *entity.User {
	return &entity.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		FullName:     utils.StringPtr(req.FullName),
		Phone:        utils.StringPtr(req.Phone),
	}
}

func ToProfile(user *entity.User) *dto.Profile {
	return &dto.Profile{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: utils.Deref(user.FullName),
		Phone:    utils.Deref(user.Phone),
	}
}
