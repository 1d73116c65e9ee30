package database

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/facette/natsort"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// BuildBacklinkQuery builds the SQL that finds every (class, handle) pair
// referencing the given handle, optionally restricted to referrer classes.
func BuildBacklinkQuery(refHandle string, includeClasses []string) (string, []interface{}, error) {
	queryBuilder := psql.Select("class", "handle").
		From("object_references").
		Where(sq.Eq{"ref_handle": refHandle})
	if len(includeClasses) > 0 {
		queryBuilder = queryBuilder.Where(sq.Eq{"class": includeClasses})
	}

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build SQL query for backlinks of %s: %w", refHandle, err)
	}
	return sqlStr, args, nil
}

// BuildGrampsIDQuery builds the SQL that looks up an object row by kind and
// Gramps ID.
func BuildGrampsIDQuery(kind, grampsID string) (string, []interface{}, error) {
	queryBuilder := psql.Select("handle").
		From("objects").
		Where(sq.Eq{"kind": kind, "gramps_id": grampsID}).
		Limit(1)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build SQL query for gramps id %s/%s: %w", kind, grampsID, err)
	}
	return sqlStr, args, nil
}

// BuildGrampsIDListQuery builds the SQL listing every Gramps ID of a kind.
func BuildGrampsIDListQuery(kind string) (string, []interface{}, error) {
	queryBuilder := psql.Select("gramps_id").
		From("objects").
		Where(sq.Eq{"kind": kind})

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build SQL query for gramps ids of %s: %w", kind, err)
	}
	return sqlStr, args, nil
}

// NaturalSort orders a list of identifiers the way a person would expect
// (I9 before I10). Used to make ID listings and backlink iteration
// deterministic.
func NaturalSort(values []string) {
	natsort.Sort(values)
}
