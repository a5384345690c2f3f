// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/samber/lo"

	"article-desk/internal/domain/entity"
	"article-desk/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listing in PostgreSQL.
// This builder is shared between COUNT and SELECT queries to eliminate duplication.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for the given filters.
// Placeholders are numbered from $1. Returns an empty clause if no filter is set.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleFilters, tableAlias string) (clause string, args []interface{}) {
	if filters.IsEmpty() {
		return "", nil
	}

	col := func(name string) string {
		if tableAlias == "" {
			return name
		}
		return tableAlias + "." + name
	}

	var conditions []string
	paramIndex := 1

	if len(filters.Categories) > 0 {
		ids := lo.Uniq(lo.Map(filters.Categories, func(c entity.Category, _ int) int64 {
			return int64(c)
		}))
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", col("category"), paramIndex))
		args = append(args, pq.Array(ids))
		paramIndex++
	}

	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("status"), paramIndex))
		args = append(args, int64(*filters.Status))
		paramIndex++
	}

	if filters.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("user_id"), paramIndex))
		args = append(args, *filters.UserID)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
