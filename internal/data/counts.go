package data

import (
	"context"
	"fmt"
)

// CountedTables are the tables snapshotted around a purge, in report order.
var CountedTables = []string{"users", "articles", "comments", "likes"}

type Counts struct {
	Users    int64
	Articles int64
	Comments int64
	Likes    int64
}

func (c Counts) Map() map[string]int64 {
	return map[string]int64{
		"users":    c.Users,
		"articles": c.Articles,
		"comments": c.Comments,
		"likes":    c.Likes,
	}
}

func (c Counts) String() string {
	return fmt.Sprintf("users=%d articles=%d comments=%d likes=%d",
		c.Users, c.Articles, c.Comments, c.Likes)
}

// CountRows runs one COUNT(*) per table.
func CountRows(ctx context.Context, q Querier) (Counts, error) {
	var c Counts
	targets := []*int64{&c.Users, &c.Articles, &c.Comments, &c.Likes}

	for i, table := range CountedTables {
		// table names come from CountedTables, never from input
		query := "SELECT COUNT(*) FROM " + table
		if err := q.QueryRowContext(ctx, query).Scan(targets[i]); err != nil {
			return Counts{}, fmt.Errorf("failed to count %s: %w", table, err)
		}
	}

	return c, nil
}
