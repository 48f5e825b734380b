package commentHandler

import (
	commentService "Blognest/internal/api/comment/service"
	"Blognest/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentsHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	commentsService commentService.ICommentsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs commentService.ICommentsService,
) *CommentsHandler {
	return &CommentsHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		commentsService: cs,
	}
}

func (h *CommentsHandler) Start(srv fiber.Router) {
	comments := srv.Group("/comments")

	// Public reader endpoints
	comments.Post("/", h.middleware.NewRateLimiter, h.AddComment)
	comments.Get("/blog/:id", h.GetBlogComments)

	// Moderation console (requires auth)
	comments.Get("", h.middleware.NewTokenMiddleware, h.GetModerationComments)
	comments.Patch("/:id/approve", h.middleware.NewTokenMiddleware, h.ApproveComment)
	comments.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteComment)
}
