package boards

import (
	"context"
	"errors"
	"strings"

	"amongus-stats-service/internal/community"
	"amongus-stats-service/internal/domain"
)

// maxCommentLength bounds a single comment body.
const maxCommentLength = 2000

// ErrInvalidComment reports a comment missing its author or body, or one
// that is too long.
var ErrInvalidComment = errors.New("comment requires userId, user and a text up to 2000 characters")

// Service handles the comment board and the petition counter.
type Service struct {
	store community.Store
}

// NewService constructs a Service over the given store.
func NewService(store community.Store) *Service {
	return &Service{store: store}
}

// Comments returns the newest comments, at most limit. Non-positive limits
// fall back to the store default.
func (s *Service) Comments(ctx context.Context, limit int) ([]domain.Comment, error) {
	return s.store.Comments(ctx, limit)
}

// PostComment validates and stores a comment, returning it with its assigned
// ID and timestamp.
func (s *Service) PostComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	c.Text = strings.TrimSpace(c.Text)
	if c.UserID == "" || c.User == "" || c.Text == "" || len(c.Text) > maxCommentLength {
		return domain.Comment{}, ErrInvalidComment
	}
	return s.store.AddComment(ctx, c)
}

// Petition returns the live count plus archived petitions.
func (s *Service) Petition(ctx context.Context) (domain.PetitionStats, error) {
	return s.store.PetitionStats(ctx)
}

// Sign increments the live petition and returns the new count.
func (s *Service) Sign(ctx context.Context) (int, error) {
	return s.store.SignPetition(ctx)
}

// Archive closes the live petition, recording the video that answered it.
func (s *Service) Archive(ctx context.Context, videoID string) error {
	return s.store.ArchivePetition(ctx, videoID)
}
