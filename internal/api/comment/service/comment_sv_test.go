package commentService

import (
	"Blognest/internal/api/comment"
	commentRepository "Blognest/internal/api/comment/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/utils"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentStore struct {
	comments []entity.Comment
	blogs    map[string]commentRepository.BlogMeta
}

func (f *fakeCommentStore) CreateComment(_ context.Context, comment entity.Comment) error {
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentStore) GetCommentByID(_ context.Context, id string) (entity.Comment, error) {
	for _, comment := range f.comments {
		if comment.ID == id {
			return comment, nil
		}
	}
	return entity.Comment{}, comments.ErrCommentNotFound
}

func (f *fakeCommentStore) GetApprovedByBlog(_ context.Context, blogID string) ([]entity.Comment, error) {
	result := make([]entity.Comment, 0)
	for _, comment := range f.comments {
		if comment.BlogID == blogID && comment.IsApproved {
			result = append(result, comment)
		}
	}
	return result, nil
}

func (f *fakeCommentStore) GetByCompany(_ context.Context, company string) ([]entity.Comment, error) {
	result := make([]entity.Comment, 0)
	for _, comment := range f.comments {
		if comment.BlogCompany == company {
			result = append(result, comment)
		}
	}
	return result, nil
}

func (f *fakeCommentStore) GetBlogMeta(_ context.Context, blogID string) (commentRepository.BlogMeta, error) {
	meta, ok := f.blogs[blogID]
	if !ok {
		return commentRepository.BlogMeta{}, comments.ErrBlogNotFound
	}
	return meta, nil
}

func (f *fakeCommentStore) ApproveComment(_ context.Context, id string) error {
	for i, comment := range f.comments {
		if comment.ID == id {
			f.comments[i].IsApproved = true
			return nil
		}
	}
	return comments.ErrCommentNotFound
}

func (f *fakeCommentStore) DeleteComment(_ context.Context, id string) error {
	for i, comment := range f.comments {
		if comment.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return comments.ErrCommentNotFound
}

type fakeCommentRepo struct {
	store *fakeCommentStore
}

func (f *fakeCommentRepo) NewClient(_ bool) (commentRepository.Client, error) {
	return commentRepository.Client{
		Comments: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestCommentService(store *fakeCommentStore) ICommentsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCommentsService(logger, &fakeCommentRepo{store: store}, utils.New())
}

func seedCommentStore() *fakeCommentStore {
	return &fakeCommentStore{
		comments: []entity.Comment{
			{ID: "c1", BlogID: "b1", BlogCompany: "acme", Name: "Dana", Content: "Nice", IsApproved: true},
			{ID: "c2", BlogID: "b1", BlogCompany: "acme", Name: "Sam", Content: "Interesting", IsApproved: false},
		},
		blogs: map[string]commentRepository.BlogMeta{
			"b1": {Company: "acme", Title: "Launch Notes", IsPublished: true},
			"b2": {Company: "acme", Title: "Draft Post", IsPublished: false},
		},
	}
}

func TestAddCommentStartsPending(t *testing.T) {
	store := seedCommentStore()
	svc := newTestCommentService(store)

	err := svc.AddComment(context.Background(), comments.CreateCommentRequest{
		BlogID:  "b1",
		Name:    "Alex",
		Content: "Question about the release",
	})
	require.NoError(t, err)

	created := store.comments[len(store.comments)-1]
	assert.Equal(t, "Alex", created.Name)
	assert.False(t, created.IsApproved)
	assert.NotEmpty(t, created.ID)
}

func TestAddCommentRejectsUnpublishedBlog(t *testing.T) {
	svc := newTestCommentService(seedCommentStore())

	err := svc.AddComment(context.Background(), comments.CreateCommentRequest{
		BlogID:  "b2",
		Name:    "Alex",
		Content: "Sneaky comment",
	})
	assert.ErrorIs(t, err, comments.ErrBlogNotFound)
}

func TestAddCommentRejectsUnknownBlog(t *testing.T) {
	svc := newTestCommentService(seedCommentStore())

	err := svc.AddComment(context.Background(), comments.CreateCommentRequest{
		BlogID:  "missing",
		Name:    "Alex",
		Content: "Hello",
	})
	assert.ErrorIs(t, err, comments.ErrBlogNotFound)
}

func TestListBlogCommentsReturnsApprovedOnly(t *testing.T) {
	svc := newTestCommentService(seedCommentStore())

	result, err := svc.ListBlogComments(context.Background(), "b1")
	require.NoError(t, err)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "c1", result.Comments[0].ID)
}

func TestListBlogCommentsHidesUnpublishedBlog(t *testing.T) {
	svc := newTestCommentService(seedCommentStore())

	_, err := svc.ListBlogComments(context.Background(), "b2")
	assert.ErrorIs(t, err, comments.ErrBlogNotFound)
}

func TestApproveCommentMovesToApproved(t *testing.T) {
	store := seedCommentStore()
	svc := newTestCommentService(store)

	err := svc.ApproveComment(context.Background(), "c2", entity.UserLoginData{Company: "acme"})
	require.NoError(t, err)

	comment, err := store.GetCommentByID(context.Background(), "c2")
	require.NoError(t, err)
	assert.True(t, comment.IsApproved)
}

func TestApproveCommentRejectsForeignTenant(t *testing.T) {
	svc := newTestCommentService(seedCommentStore())

	err := svc.ApproveComment(context.Background(), "c2", entity.UserLoginData{Company: "globex"})
	assert.ErrorIs(t, err, comments.ErrCommentNotOwned)
}

func TestDeleteCommentRejectsForeignTenant(t *testing.T) {
	svc := newTestCommentService(seedCommentStore())

	err := svc.DeleteComment(context.Background(), "c1", entity.UserLoginData{Company: "globex"})
	assert.ErrorIs(t, err, comments.ErrCommentNotOwned)
}

func TestListModerationCommentsInvalidStatus(t *testing.T) {
	svc := newTestCommentService(seedCommentStore())

	_, err := svc.ListModerationComments(context.Background(), "acme", comments.ModerationQuery{Status: "bogus"})
	assert.ErrorIs(t, err, comments.ErrInvalidStatus)
}
