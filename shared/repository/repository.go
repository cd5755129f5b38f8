// Package repository holds the SQL building blocks shared by the entity
// repositories.
package repository

import (
	"fmt"
	"maps"
	"strings"

	"github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
)

// OrderAndPaginate renders the trailing ORDER BY / LIMIT / OFFSET clauses
// for a listing query. Sorting falls back to defaultSort ascending when the
// request does not specify one; pagination is skipped entirely when page or
// limit are unset so internal full-table reads stay unbounded.
func OrderAndPaginate(params dto.QueryParams, defaultSort string) string {
	sortBy := defaultSort
	sortDir := dto.SortDirAsc

	if params.SortBy != "" {
		sortBy = params.SortBy
	}

	if params.SortDir != "" {
		sortDir = params.SortDir
	}

	clause := fmt.Sprintf(" ORDER BY %s %s", sortBy, sortDir)

	if params.Page > 0 && params.Limit > 0 {
		clause += fmt.Sprintf(" LIMIT %d OFFSET %d", params.Limit, (params.Page-1)*params.Limit)
	}

	return clause
}

// BuildUpdateQuery renders a named UPDATE statement over the given column
// map, filtered by primary key. The returned args carry the column values
// plus the id under the "pk" key.
func BuildUpdateQuery(table string, fields map[string]any, id any) (string, map[string]any) {
	assignments := make([]string, 0, len(fields))
	for col := range fields {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	args := make(map[string]any, len(fields)+1)
	maps.Copy(args, fields)
	args["pk"] = id

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = :pk", table, strings.Join(assignments, ", "))

	return query, args
}
