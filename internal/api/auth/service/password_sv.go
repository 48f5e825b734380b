package authService

import (
	"Blognest/internal/api/auth"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) UpdatePassword(ctx context.Context, user entity.UserLoginData, req auth.UpdatePasswordRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	stored, err := repo.Users.GetUserByID(ctx, user.ID)
	if err != nil {
		return err
	}

	if err := s.bcryptUtils.ComparePassword(stored.Password, req.OldPassword); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         user.ID,
		}).Warn("Password change with wrong old password")
		return auth.ErrWrongOldPassword
	}

	if req.OldPassword == req.NewPassword {
		return auth.ErrPasswordSame
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         user.ID,
			"error":      err.Error(),
		}).Error("Failed to update user password")
		return err
	}

	return nil
}
