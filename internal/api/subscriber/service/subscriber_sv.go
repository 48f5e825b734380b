package subscriberService

import (
	"Blognest/internal/api/subscriber"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *subscribersService) Subscribe(ctx context.Context, req subscribers.SubscribeRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.subscribersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	subscriberID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	subscriber := entity.Subscriber{
		ID:        subscriberID,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Company:   req.Company,
		CreatedAt: time.Now(),
	}

	if err := repo.Subscribers.CreateSubscriber(ctx, subscriber); err != nil {
		if errors.Is(err, subscribers.ErrAlreadySubscribed) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create subscriber")
		return subscribers.ErrCreateSubscriber
	}

	return nil
}

func (s *subscribersService) ListSubscribers(ctx context.Context, company string) (*subscribers.SubscriberListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.subscribersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Subscribers.GetSubscribersByCompany(ctx, company)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Failed to get subscribers")
		return nil, err
	}

	response := &subscribers.SubscriberListResponse{
		Subscribers: make([]subscribers.SubscriberResponse, 0, len(list)),
	}

	for _, subscriber := range list {
		// The query is already scoped by company, but the list leaves the
		// tenant boundary, so rows are matched once more before serialization.
		if subscriber.Company != company {
			continue
		}

		response.Subscribers = append(response.Subscribers, subscribers.SubscriberResponse{
			ID:        subscriber.ID,
			Email:     subscriber.Email,
			Company:   subscriber.Company,
			CreatedAt: subscriber.CreatedAt,
		})
	}

	response.Total = len(response.Subscribers)

	return response, nil
}

func (s *subscribersService) RemoveSubscriber(ctx context.Context, id string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.subscribersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	subscriber, err := repo.Subscribers.GetSubscriberByID(ctx, id)
	if err != nil {
		if errors.Is(err, subscribers.ErrSubscriberNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Subscriber not found")
		}
		return err
	}

	if subscriber.Company != user.Company {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"company":    user.Company,
		}).Warn("Subscriber does not belong to company")
		return subscribers.ErrSubscriberNotOwned
	}

	if err := repo.Subscribers.DeleteSubscriber(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete subscriber")
		if errors.Is(err, subscribers.ErrSubscriberNotFound) {
			return err
		}
		return subscribers.ErrDeleteSubscriber
	}

	return nil
}
