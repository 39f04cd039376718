package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func CreateTestUser(ctx context.Context, q Querier, nickname string) (string, error) {
	id := uuid.NewString()
	now := time.Now().UnixMilli()

	_, err := q.ExecContext(ctx,
		`INSERT INTO users (id, nickname, avatar_seed, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, nickname, id[:8], now, now,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create test user: %w", err)
	}
	return id, nil
}

func CreateTestArticle(ctx context.Context, q Querier, slug string) (string, error) {
	id := uuid.NewString()

	_, err := q.ExecContext(ctx,
		`INSERT INTO articles (id, title, slug) VALUES (?, ?, ?)`,
		id, slug, slug,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create test article: %w", err)
	}
	return id, nil
}

func CreateTestComment(ctx context.Context, q Querier, articleID, userID, content string) error {
	now := time.Now().UnixMilli()

	_, err := q.ExecContext(ctx,
		`INSERT INTO comments (id, article_id, user_id, content, raw_content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), articleID, userID, content, content, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create test comment: %w", err)
	}
	return nil
}

func CreateTestLike(ctx context.Context, q Querier, articleID, userID string) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO likes (article_id, user_id, created_at) VALUES (?, ?, ?)`,
		articleID, userID, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to create test like: %w", err)
	}
	return nil
}
