package subscriberHandler

import (
	subscriberService "Blognest/internal/api/subscriber/service"
	"Blognest/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SubscribersHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	subscribersService subscriberService.ISubscribersService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss subscriberService.ISubscribersService,
) *SubscribersHandler {
	return &SubscribersHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		subscribersService: ss,
	}
}

func (h *SubscribersHandler) Start(srv fiber.Router) {
	subscribers := srv.Group("/subscribers")

	// Public reader endpoint
	subscribers.Post("/", h.middleware.NewRateLimiter, h.Subscribe)

	// Admin console (requires auth)
	subscribers.Get("", h.middleware.NewTokenMiddleware, h.GetSubscribers)
	subscribers.Delete("/:id", h.middleware.NewTokenMiddleware, h.RemoveSubscriber)
}
