// Package postgres implements the repository interfaces on PostgreSQL using
// pgx and squirrel. All statements use dollar placeholders and every
// uniqueness rule is enforced by a database constraint, not application checks.
package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asrivastava/codecampus/internal/app/repositories"
)

// NewStores wires all postgres repositories onto one connection pool.
func NewStores(db *pgxpool.Pool) *repositories.Stores {
	return &repositories.Stores{
		Users:    NewUserRepository(db),
		Blogs:    NewBlogRepository(db),
		Projects: NewProjectRepository(db),
		Events:   NewEventRepository(db),
		Comments: NewCommentRepository(db),
		Likes:    NewLikeRepository(db),
	}
}

// contentWhere translates a ContentFilter into a WHERE condition shared by
// the blog, project and event listings.
func contentWhere(filter repositories.ContentFilter) squirrel.And {
	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}
	if filter.AuthorID != nil {
		where = append(where, squirrel.Eq{"author_id": *filter.AuthorID})
	}
	return where
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
