package subscriberService

import (
	"Blognest/internal/api/subscriber"
	subscriberRepository "Blognest/internal/api/subscriber/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ISubscribersService interface {
	Subscribe(ctx context.Context, req subscribers.SubscribeRequest) error
	ListSubscribers(ctx context.Context, company string) (*subscribers.SubscriberListResponse, error)
	RemoveSubscriber(ctx context.Context, id string, user entity.UserLoginData) error
}

type subscribersService struct {
	log             *logrus.Logger
	subscribersRepo subscriberRepository.Repository
	utils           utils.IUtils
}

func NewSubscribersService(
	log *logrus.Logger,
	subscribersRepo subscriberRepository.Repository,
	utilsInstance utils.IUtils,
) ISubscribersService {
	return &subscribersService{
		log:             log,
		subscribersRepo: subscribersRepo,
		utils:           utilsInstance,
	}
}
