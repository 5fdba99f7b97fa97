package boards

import (
	"context"
	"errors"
	"strings"
	"testing"

	"amongus-stats-service/internal/community"
	"amongus-stats-service/internal/domain"
)

func TestPostCommentTrimsAndStores(t *testing.T) {
	svc := NewService(community.NewMemoryStore())

	stored, err := svc.PostComment(context.Background(), domain.Comment{
		UserID: "u1",
		User:   "Harry",
		Text:   "  great episode  ",
	})
	if err != nil {
		t.Fatalf("PostComment: %v", err)
	}
	if stored.Text != "great episode" {
		t.Fatalf("Text = %q, want trimmed body", stored.Text)
	}
	if stored.ID == 0 || stored.Timestamp == 0 {
		t.Fatalf("stored comment missing ID or timestamp: %+v", stored)
	}
}

func TestPostCommentValidation(t *testing.T) {
	svc := NewService(community.NewMemoryStore())

	cases := []struct {
		name    string
		comment domain.Comment
	}{
		{"missing user id", domain.Comment{User: "Harry", Text: "hi"}},
		{"missing user", domain.Comment{UserID: "u1", Text: "hi"}},
		{"whitespace body", domain.Comment{UserID: "u1", User: "Harry", Text: "   "}},
		{"too long", domain.Comment{UserID: "u1", User: "Harry", Text: strings.Repeat("x", maxCommentLength+1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.PostComment(context.Background(), tc.comment); !errors.Is(err, ErrInvalidComment) {
				t.Fatalf("PostComment = %v, want ErrInvalidComment", err)
			}
		})
	}
}

func TestPetitionFlow(t *testing.T) {
	svc := NewService(community.NewMemoryStore())
	ctx := context.Background()

	for want := 1; want <= 2; want++ {
		count, err := svc.Sign(ctx)
		if err != nil || count != want {
			t.Fatalf("Sign = %d, %v; want %d", count, err, want)
		}
	}

	if err := svc.Archive(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	stats, err := svc.Petition(ctx)
	if err != nil {
		t.Fatalf("Petition: %v", err)
	}
	if stats.CurrentCount != 0 || len(stats.History) != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
