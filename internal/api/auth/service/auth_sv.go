package authService

import (
	"Blognest/internal/api/auth"
	contextPkg "Blognest/pkg/context"
	jwtPkg "Blognest/pkg/jwt"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenTTL = time.Hour

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (*auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	user, err := repo.Users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown email")
			return nil, auth.ErrInvalidEmailOrPassword
		}
		return nil, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Login attempt with wrong password")
		return nil, auth.ErrInvalidEmailOrPassword
	}

	claims := map[string]interface{}{
		"id":      user.ID,
		"email":   user.Email,
		"company": user.Company,
		"role":    user.Role,
	}

	accessToken, expiredAt, err := jwtPkg.Sign(claims, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return nil, err
	}

	return &auth.LoginUserResponse{
		AccessToken:      accessToken,
		Company:          user.Company,
		Role:             user.Role,
		ExpiresInMinutes: time.Until(time.Unix(expiredAt, 0)).Minutes(),
	}, nil
}
