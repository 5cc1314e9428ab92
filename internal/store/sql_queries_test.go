// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{
		UserID:       "0190c7e2-0000-7000-8000-000000000001",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "hash",
		PasswordSalt: "salt",
		CreatedAt:    time.Now(),
	}

	query, args, err := buildCreateUserQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), user)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, len(userColumns))
	require.Equal(t, user.UserID, args[0])
	require.Equal(t, user.Email, args[2])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	for _, c := range userColumns {
		require.Contains(t, q, c)
	}

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), "john@example.com")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "john@example.com", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "email = ?")
	for _, c := range userColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSetLoginTimeQuery_NilClearsColumn(t *testing.T) {
	query, args, err := buildSetLoginTimeQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), "user-1", nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update users")
	require.Contains(t, q, "login_time")
	require.Contains(t, q, "user_id = ?")

	// nil pointer travels as an argument so the column is set to NULL
	require.Len(t, args, 2)
	require.Nil(t, args[0])
	require.Equal(t, "user-1", args[1])
}

func Test_buildUpsertDocumentQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildUpsertDocumentQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), "user-1", []byte(`{"topics":[]}`), now)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, "user-1", args[0])
	require.Equal(t, `{"topics":[]}`, args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into documents")
	require.Contains(t, q, "on conflict (user_id) do update")
	require.Contains(t, q, "excluded.payload")
}

func Test_buildLegacyDocumentQueries(t *testing.T) {
	selectQuery, selectArgs, err := buildSelectLegacyDocumentQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question))
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(selectQuery), "from legacy_document")
	require.Equal(t, []any{1}, selectArgs)

	deleteQuery, deleteArgs, err := buildDeleteLegacyDocumentQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question))
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(deleteQuery), "delete from legacy_document")
	require.Equal(t, []any{1}, deleteArgs)
}
