package commentService

import (
	"Blognest/internal/api/comment"
	commentRepository "Blognest/internal/api/comment/repository"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *commentsService) AddComment(ctx context.Context, req comments.CreateCommentRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	meta, err := repo.Comments.GetBlogMeta(ctx, req.BlogID)
	if err != nil {
		if errors.Is(err, comments.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    req.BlogID,
			}).Warn("Blog not found for new comment")
			return err
		}
		return err
	}

	// Unpublished posts are invisible to readers, so they take no comments.
	if !meta.IsPublished {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    req.BlogID,
		}).Warn("Comment rejected for unpublished blog")
		return comments.ErrBlogNotFound
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	comment := entity.Comment{
		ID:         commentID,
		BlogID:     req.BlogID,
		Name:       req.Name,
		Content:    req.Content,
		IsApproved: false,
		CreatedAt:  time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return comments.ErrCreateComment
	}

	return nil
}

func (s *commentsService) ListBlogComments(ctx context.Context, blogID string) (*comments.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	meta, err := repo.Comments.GetBlogMeta(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !meta.IsPublished {
		return nil, comments.ErrBlogNotFound
	}

	list, err := repo.Comments.GetApprovedByBlog(ctx, blogID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to get approved comments")
		return nil, err
	}

	return toListResponse(list), nil
}

func (s *commentsService) ListModerationComments(ctx context.Context, company string, query comments.ModerationQuery) (*comments.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Comments.GetByCompany(ctx, company)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Failed to get tenant comments")
		return nil, err
	}

	filtered, err := FilterComments(list, query.Status, query.Search)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"company":    company,
		"fetched":    len(list),
		"filtered":   len(filtered),
	}).Debug("Filtered moderation comment list")

	return toListResponse(filtered), nil
}

func (s *commentsService) ApproveComment(ctx context.Context, id string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := s.ownedComment(ctx, repo, id, user); err != nil {
		return err
	}

	if err := repo.Comments.ApproveComment(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to approve comment")
		if errors.Is(err, comments.ErrCommentNotFound) {
			return err
		}
		return comments.ErrApproveComment
	}

	return nil
}

func (s *commentsService) DeleteComment(ctx context.Context, id string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := s.ownedComment(ctx, repo, id, user); err != nil {
		return err
	}

	if err := repo.Comments.DeleteComment(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete comment")
		if errors.Is(err, comments.ErrCommentNotFound) {
			return err
		}
		return comments.ErrDeleteComment
	}

	return nil
}

func (s *commentsService) ownedComment(ctx context.Context, repo commentRepository.Client, id string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	comment, err := repo.Comments.GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Comment not found")
		}
		return err
	}

	if comment.BlogCompany != user.Company {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"company":    user.Company,
		}).Warn("Comment does not belong to company")
		return comments.ErrCommentNotOwned
	}

	return nil
}

func toListResponse(list []entity.Comment) *comments.CommentListResponse {
	response := &comments.CommentListResponse{
		Comments: make([]comments.CommentResponse, 0, len(list)),
		Total:    len(list),
	}

	for _, comment := range list {
		response.Comments = append(response.Comments, comments.CommentResponse{
			ID:         comment.ID,
			BlogID:     comment.BlogID,
			BlogTitle:  comment.BlogTitle,
			Name:       comment.Name,
			Content:    comment.Content,
			IsApproved: comment.IsApproved,
			CreatedAt:  comment.CreatedAt,
		})
	}

	return response
}
