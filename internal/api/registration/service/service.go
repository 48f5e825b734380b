package registrationService

import (
	"Blognest/internal/api/registration"
	registrationRepository "Blognest/internal/api/registration/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/bcrypt"
	"Blognest/pkg/smtp"
	"Blognest/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IRegistrationsService interface {
	SubmitRequest(ctx context.Context, req registrations.CreateRequestRequest) error
	ListRequests(ctx context.Context, status string) (*registrations.RequestListResponse, error)
	ReviewRequest(ctx context.Context, id string, req registrations.ReviewRequestRequest, reviewer entity.UserLoginData) error
}

type registrationsService struct {
	log              *logrus.Logger
	registrationRepo registrationRepository.Repository
	bcryptUtils      bcrypt.IBcrypt
	mailer           smtp.ItfSmtp
	utils            utils.IUtils
}

func NewRegistrationsService(
	log *logrus.Logger,
	registrationRepo registrationRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	mailer smtp.ItfSmtp,
	utilsInstance utils.IUtils,
) IRegistrationsService {
	return &registrationsService{
		log:              log,
		registrationRepo: registrationRepo,
		bcryptUtils:      bcryptUtils,
		mailer:           mailer,
		utils:            utilsInstance,
	}
}
