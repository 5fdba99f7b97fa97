// Package community persists the crowd-sourced features: tier-list
// submissions, comments, and the petition counter. The tier consensus itself
// is never stored; it is recomputed from all current submissions on every
// read.
package community

import (
	"context"

	"amongus-stats-service/internal/domain"
)

// Store is the document-store contract shared by the memory and SQLite
// backends.
type Store interface {
	// SaveTierList upserts by UserID: a new submission replaces the prior
	// one entirely, it never merges.
	SaveTierList(ctx context.Context, sub domain.TierSubmission) error
	// TierList returns one user's submission.
	TierList(ctx context.Context, userID string) (domain.TierSubmission, bool, error)
	// TierLists returns a point-in-time snapshot of every submission.
	TierLists(ctx context.Context) ([]domain.TierSubmission, error)

	// AddComment stores a comment and returns it with its assigned ID.
	AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	// Comments returns the newest comments first, at most limit.
	Comments(ctx context.Context, limit int) ([]domain.Comment, error)

	// PetitionStats returns the live count plus archived petitions.
	PetitionStats(ctx context.Context) (domain.PetitionStats, error)
	// SignPetition increments the live petition, opening one if needed, and
	// returns the new count.
	SignPetition(ctx context.Context) (int, error)
	// ArchivePetition closes the live petition, recording the video that
	// ended it. Archiving with no live petition is a no-op.
	ArchivePetition(ctx context.Context, videoID string) error

	Close() error
}

const defaultCommentLimit = 50
