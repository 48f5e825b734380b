package registrationService

import (
	"Blognest/internal/api/registration"
	registrationRepository "Blognest/internal/api/registration/repository"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const generatedPasswordLength = 12

func (s *registrationsService) SubmitRequest(ctx context.Context, req registrations.CreateRequestRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.registrationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	usage, err := repo.Requests.CountCompanyUsage(ctx, req.Company)
	if err != nil {
		return err
	}
	if usage > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    req.Company,
		}).Warn("Company name already in use")
		return registrations.ErrCompanyTaken
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	request := entity.CompanyRequest{
		ID:           id,
		Fullname:     req.Fullname,
		Company:      req.Company,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		BusinessType: req.BusinessType,
		Status:       entity.RequestStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := repo.Requests.CreateRequest(ctx, request); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create registration request")
		return registrations.ErrCreateRequest
	}

	return nil
}

func (s *registrationsService) ListRequests(ctx context.Context, status string) (*registrations.RequestListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.registrationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Requests.GetRequests(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get registration requests")
		return nil, err
	}

	response := &registrations.RequestListResponse{
		Requests: make([]registrations.RequestResponse, 0, len(list)),
	}

	for _, request := range list {
		if status != "" && request.Status != status {
			continue
		}
		response.Requests = append(response.Requests, toResponse(request))
	}

	response.Total = len(response.Requests)

	return response, nil
}

func (s *registrationsService) ReviewRequest(ctx context.Context, id string, req registrations.ReviewRequestRequest, reviewer entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Status != entity.RequestStatusApproved && req.Status != entity.RequestStatusRejected {
		return registrations.ErrInvalidStatus
	}

	// A rejection with no reason is refused before anything is touched.
	if req.Status == entity.RequestStatusRejected && strings.TrimSpace(req.RejectionReason) == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Rejection submitted without a reason")
		return registrations.ErrReasonRequired
	}

	repo, err := s.registrationRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	request, err := repo.Requests.GetRequestByID(ctx, id)
	if err != nil {
		return err
	}

	if request.Status != entity.RequestStatusPending {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"status":     request.Status,
		}).Warn("Registration request already reviewed")
		return registrations.ErrAlreadyReviewed
	}

	now := time.Now()
	request.Status = req.Status
	request.RejectionReason = strings.TrimSpace(req.RejectionReason)
	request.ReviewedBy = reviewer.Email
	request.ReviewedAt = &now

	if err := repo.Requests.ReviewRequest(ctx, request); err != nil {
		if errors.Is(err, registrations.ErrAlreadyReviewed) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to review registration request")
		return registrations.ErrReviewRequest
	}

	var plainPassword string
	if req.Status == entity.RequestStatusApproved {
		plainPassword, err = s.createTenantAdmin(ctx, repo, request)
		if err != nil {
			return err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to commit review transaction")
		return registrations.ErrReviewRequest
	}

	// Mail is best effort once the review is committed.
	s.notifyApplicant(requestID, request, plainPassword)

	return nil
}

func (s *registrationsService) createTenantAdmin(ctx context.Context, repo registrationRepository.Client, request entity.CompanyRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	plainPassword, err := s.utils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate password")
		return "", err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(plainPassword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return "", err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	now := time.Now()
	user := entity.User{
		ID:        userID,
		Email:     request.Email,
		Password:  hashedPassword,
		Company:   request.Company,
		Role:      entity.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    request.Company,
			"error":      err.Error(),
		}).Error("Failed to create tenant admin user")
		return "", registrations.ErrReviewRequest
	}

	return plainPassword, nil
}

func (s *registrationsService) notifyApplicant(requestID string, request entity.CompanyRequest, plainPassword string) {
	var err error
	switch request.Status {
	case entity.RequestStatusApproved:
		err = s.mailer.SendRequestApproved(request.Email, request.Company, plainPassword)
	case entity.RequestStatusRejected:
		err = s.mailer.SendRequestRejected(request.Email, request.Company, request.RejectionReason)
	}

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         request.ID,
			"error":      err.Error(),
		}).Error("Failed to send review notification email")
	}
}

func toResponse(request entity.CompanyRequest) registrations.RequestResponse {
	return registrations.RequestResponse{
		ID:              request.ID,
		Fullname:        request.Fullname,
		Company:         request.Company,
		Email:           request.Email,
		BusinessType:    request.BusinessType,
		Status:          request.Status,
		RejectionReason: request.RejectionReason,
		ReviewedBy:      request.ReviewedBy,
		ReviewedAt:      request.ReviewedAt,
		CreatedAt:       request.CreatedAt,
	}
}
