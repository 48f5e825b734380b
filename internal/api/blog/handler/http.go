package blogHandler

import (
	blogService "Blognest/internal/api/blog/service"
	"Blognest/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	// Public reader endpoints (no auth required)
	blogs.Get("", h.GetPublicBlogs)
	blogs.Get("/categories", h.GetCategories)

	// Admin console (requires auth)
	blogs.Post("/", h.middleware.NewTokenMiddleware, h.CreateBlog)
	blogs.Get("/company", h.middleware.NewTokenMiddleware, h.GetCompanyBlogs)
	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlog)
	blogs.Patch("/:id/publish", h.middleware.NewTokenMiddleware, h.TogglePublish)
	blogs.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBlog)

	blogs.Get("/:id", h.GetBlogByID)
}
