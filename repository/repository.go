package repository

import (
	"database/sql"
)

// sortColumn resolves a requested sort key against a per-table allow-list,
// defaulting to the primary key. Column names are never taken from input.
func sortColumn(allowed map[string]string, requested string) string {
	if col, ok := allowed[requested]; ok {
		return col
	}
	return "id"
}

func sortOrder(order string) string {
	if order == "desc" {
		return "DESC"
	}
	return "ASC"
}

// requireRowAffected maps zero-row updates and deletes to sql.ErrNoRows so
// services can translate them into not-found responses.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
