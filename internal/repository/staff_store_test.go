package repository

import (
	"errors"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-directory/internal/directory"
)

func TestStoreErrorCarriesProviderDiagnostics(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    "23505",
		Message: "duplicate key value violates unique constraint",
		Detail:  "Key (id)=(42) already exists.",
	}

	err := storeError(pgErr)

	var dirErr *directory.Error
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, directory.KindRemoteFailure, dirErr.Kind)
	assert.Equal(t, "23505", dirErr.Code)
	assert.Equal(t, pgErr.Message, dirErr.Message)
	assert.Equal(t, pgErr.Detail, dirErr.Details)
}

func TestStoreErrorWrapsPlainErrors(t *testing.T) {
	err := storeError(io.ErrUnexpectedEOF)

	var dirErr *directory.Error
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, directory.KindRemoteFailure, dirErr.Kind)
	assert.Equal(t, io.ErrUnexpectedEOF.Error(), dirErr.Message)
	assert.Empty(t, dirErr.Code)
}

func TestStoreErrorUnwrapsWrappedPgError(t *testing.T) {
	wrapped := errors.Join(errors.New("query staff"), &pgconn.PgError{Code: "42P01", Message: "relation does not exist"})

	err := storeError(wrapped)

	var dirErr *directory.Error
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, "42P01", dirErr.Code)
}
