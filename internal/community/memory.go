package community

import (
	"context"
	"sort"
	"sync"
	"time"

	"amongus-stats-service/internal/domain"
)

// MemoryStore is the in-process backend, used by default and in tests.
type MemoryStore struct {
	mu        sync.RWMutex
	tierLists map[string]domain.TierSubmission
	comments  []domain.Comment
	petitions []domain.Petition
	nextID    int64
	now       func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tierLists: make(map[string]domain.TierSubmission),
		nextID:    1,
		now:       time.Now,
	}
}

func (s *MemoryStore) SaveTierList(ctx context.Context, sub domain.TierSubmission) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.Timestamp = s.now().UnixMilli()
	s.tierLists[sub.UserID] = sub
	return nil
}

func (s *MemoryStore) TierList(ctx context.Context, userID string) (domain.TierSubmission, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.tierLists[userID]
	return sub, ok, nil
}

func (s *MemoryStore) TierLists(ctx context.Context) ([]domain.TierSubmission, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]domain.TierSubmission, 0, len(s.tierLists))
	for _, sub := range s.tierLists {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].UserID < subs[j].UserID })
	return subs, nil
}

func (s *MemoryStore) AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID
	s.nextID++
	c.Timestamp = s.now().UnixMilli()
	s.comments = append(s.comments, c)
	return c, nil
}

func (s *MemoryStore) Comments(ctx context.Context, limit int) ([]domain.Comment, error) {
	_ = ctx
	if limit <= 0 {
		limit = defaultCommentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Comment, len(s.comments))
	copy(result, s.comments)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Timestamp > result[j].Timestamp })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemoryStore) PetitionStats(ctx context.Context) (domain.PetitionStats, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.PetitionStats{History: make([]domain.Petition, 0)}
	for _, p := range s.petitions {
		switch p.Type {
		case domain.PetitionCurrent:
			stats.CurrentCount = p.Count
		case domain.PetitionArchive:
			stats.History = append(stats.History, p)
		}
	}
	sort.SliceStable(stats.History, func(i, j int) bool {
		return stats.History[i].EndDate > stats.History[j].EndDate
	})
	return stats, nil
}

func (s *MemoryStore) SignPetition(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.petitions {
		if s.petitions[i].Type == domain.PetitionCurrent {
			s.petitions[i].Count++
			return s.petitions[i].Count, nil
		}
	}

	s.petitions = append(s.petitions, domain.Petition{
		ID:        s.nextID,
		Type:      domain.PetitionCurrent,
		Count:     1,
		StartDate: s.now().UnixMilli(),
	})
	s.nextID++
	return 1, nil
}

func (s *MemoryStore) ArchivePetition(ctx context.Context, videoID string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.petitions {
		if s.petitions[i].Type == domain.PetitionCurrent {
			s.petitions[i].Type = domain.PetitionArchive
			s.petitions[i].EndDate = s.now().UnixMilli()
			s.petitions[i].VideoID = videoID
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
