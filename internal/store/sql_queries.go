// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the column order every user query selects and scans.
var userColumns = []string{"user_id", "username", "password_hash", "is_active", "created_at"}

// sortableUserColumns maps accepted order_by values to columns.
var sortableUserColumns = map[string]string{
	"user_id":    "user_id",
	"id":         "user_id",
	"username":   "username",
	"created_at": "created_at",
}

func buildCreateUserQuery(ph sq.PlaceholderFormat, user models.User) (string, []any, error) {
	query, args, err := sq.Insert(usersTable).
		Columns("username", "password_hash", "is_active").
		Values(user.Username, user.PasswordHash, user.IsActive).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUsernameQuery(ph sq.PlaceholderFormat, username string) (string, []any, error) {
	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListUsersQuery pages through users. Without order_by the rows come in
// user_id order so that pages are stable. A non-positive limit means
// [models.DefaultPageLimit].
func buildListUsersQuery(ph sq.PlaceholderFormat, page models.PageParams) (string, []any, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = models.DefaultPageLimit
	}
	skip := max(page.Skip, 0)

	column := "user_id"
	if page.OrderBy != "" {
		var ok bool
		column, ok = sortableUserColumns[page.OrderBy]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownOrderColumn, page.OrderBy)
		}
	}

	direction := "ASC"
	if page.OrderDesc {
		direction = "DESC"
	}

	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		OrderBy(column + " " + direction).
		Limit(uint64(limit)).
		Offset(uint64(skip)).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
