package commentService

import (
	"Blognest/internal/api/comment"
	commentRepository "Blognest/internal/api/comment/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ICommentsService interface {
	AddComment(ctx context.Context, req comments.CreateCommentRequest) error
	ListBlogComments(ctx context.Context, blogID string) (*comments.CommentListResponse, error)
	ListModerationComments(ctx context.Context, company string, query comments.ModerationQuery) (*comments.CommentListResponse, error)
	ApproveComment(ctx context.Context, id string, user entity.UserLoginData) error
	DeleteComment(ctx context.Context, id string, user entity.UserLoginData) error
}

type commentsService struct {
	log          *logrus.Logger
	commentsRepo commentRepository.Repository
	utils        utils.IUtils
}

func NewCommentsService(
	log *logrus.Logger,
	commentsRepo commentRepository.Repository,
	utilsInstance utils.IUtils,
) ICommentsService {
	return &commentsService{
		log:          log,
		commentsRepo: commentsRepo,
		utils:        utilsInstance,
	}
}
