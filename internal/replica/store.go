// Package replica provides read access to a wiki replica database for
// category membership and latest-revision lookups.
package replica

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Namespaces searched for category members. Articles live in 0, their
// talk pages in 1.
const (
	NamespaceArticle = 0
	NamespaceTalk    = 1
)

// Store wraps a connection pool to the replica database.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &ResolutionError{Message: "failed to connect to replica database", Cause: err}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &ResolutionError{Message: "failed to ping replica database", Cause: err}
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// MembersOf returns the distinct titles of category members in the
// article and talk namespaces. Titles come back without a namespace
// prefix. Spaces in the category name are normalized to underscores to
// match how the link table stores it.
func (s *Store) MembersOf(ctx context.Context, category string) ([]string, error) {
	category = strings.ReplaceAll(category, " ", "_")

	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT page_title
		 FROM page
		 JOIN categorylinks ON page_id = cl_from
		 WHERE cl_to = $1
		 AND page_namespace IN ($2, $3)`,
		category, NamespaceArticle, NamespaceTalk,
	)
	if err != nil {
		return nil, &ResolutionError{Message: "failed to query category members", Cause: err}
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, &ResolutionError{Message: "failed to scan member row", Cause: err}
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, &ResolutionError{Message: "failed to read category members", Cause: err}
	}

	return titles, nil
}

// LatestRevision returns the current revision ID of the article with the
// given title. found is false when no such article exists, which is the
// normal outcome for redirects, deleted pages, and talk-only members.
func (s *Store) LatestRevision(ctx context.Context, title string) (revID string, found bool, err error) {
	var latest int64
	err = s.pool.QueryRow(ctx,
		`SELECT page_latest
		 FROM page
		 WHERE page_title = $1
		 AND page_namespace = $2`,
		title, NamespaceArticle,
	).Scan(&latest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, &ResolutionError{Message: "failed to query latest revision", Cause: err}
	}

	if latest <= 0 {
		return "", false, nil
	}
	return strconv.FormatInt(latest, 10), true, nil
}
