package registrationHandler

import (
	registrationService "Blognest/internal/api/registration/service"
	"Blognest/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RegistrationsHandler struct {
	log                  *logrus.Logger
	validator            *validator.Validate
	middleware           middleware.Middleware
	registrationsService registrationService.IRegistrationsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs registrationService.IRegistrationsService,
) *RegistrationsHandler {
	return &RegistrationsHandler{
		log:                  log,
		validator:            validate,
		middleware:           middleware,
		registrationsService: rs,
	}
}

func (h *RegistrationsHandler) Start(srv fiber.Router) {
	requests := srv.Group("/registrations")

	// Public landing page form
	requests.Post("/", h.middleware.NewRateLimiter, h.SubmitRequest)

	// Super admin console
	requests.Get("", h.middleware.NewTokenMiddleware, h.middleware.NewSuperAdminMiddleware, h.GetRequests)
	requests.Put("/:id/review", h.middleware.NewTokenMiddleware, h.middleware.NewSuperAdminMiddleware, h.ReviewRequest)
}
