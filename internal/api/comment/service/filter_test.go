package commentService

import (
	"Blognest/internal/api/comment"
	"Blognest/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComments() []entity.Comment {
	return []entity.Comment{
		{ID: "1", BlogTitle: "Launch Notes", Name: "Dana", Content: "Great release", IsApproved: true},
		{ID: "2", BlogTitle: "Launch Notes", Name: "Sam", Content: "Looking forward to more", IsApproved: false},
		{ID: "3", BlogTitle: "Roadmap", Name: "Alex", Content: "When is the beta", IsApproved: false},
		{ID: "4", BlogTitle: "Retro", Name: "Dana", Content: "Thanks for sharing", IsApproved: true},
	}
}

func TestFilterCommentsEmptyStatusKeepsBoth(t *testing.T) {
	result, err := FilterComments(sampleComments(), "", "")
	require.NoError(t, err)
	assert.Len(t, result, 4)
}

func TestFilterCommentsApprovedOnly(t *testing.T) {
	result, err := FilterComments(sampleComments(), StatusApproved, "")
	require.NoError(t, err)

	assert.Len(t, result, 2)
	for _, comment := range result {
		assert.True(t, comment.IsApproved)
	}
}

func TestFilterCommentsPendingOnly(t *testing.T) {
	result, err := FilterComments(sampleComments(), StatusPending, "")
	require.NoError(t, err)

	assert.Len(t, result, 2)
	for _, comment := range result {
		assert.False(t, comment.IsApproved)
	}
}

func TestFilterCommentsPartitionIsExhaustive(t *testing.T) {
	approved, err := FilterComments(sampleComments(), StatusApproved, "")
	require.NoError(t, err)
	pending, err := FilterComments(sampleComments(), StatusPending, "")
	require.NoError(t, err)

	assert.Equal(t, len(sampleComments()), len(approved)+len(pending))

	ids := map[string]bool{}
	for _, comment := range append(approved, pending...) {
		assert.False(t, ids[comment.ID])
		ids[comment.ID] = true
	}
}

func TestFilterCommentsRejectsUnknownStatus(t *testing.T) {
	_, err := FilterComments(sampleComments(), "archived", "")
	assert.ErrorIs(t, err, comments.ErrInvalidStatus)
}

func TestFilterCommentsSearchMatchesBlogTitle(t *testing.T) {
	result, err := FilterComments(sampleComments(), "", "roadmap")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)
}

func TestFilterCommentsSearchMatchesName(t *testing.T) {
	result, err := FilterComments(sampleComments(), "", "dana")
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestFilterCommentsSearchCombinesWithStatus(t *testing.T) {
	result, err := FilterComments(sampleComments(), StatusPending, "launch")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}
