package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairs/internal/repo"
)

func TestMemory_Users(t *testing.T) {
	ctx := context.Background()
	m := repo.NewMemory()

	id, err := m.CreateUser(ctx, "anna", "a@example.com", "hash")
	require.NoError(t, err)
	_, err = m.CreateUser(ctx, "anna", "b@example.com", "hash2")
	assert.ErrorIs(t, err, repo.ErrUserExists)

	got, hash, err := m.GetByLogin(ctx, "anna")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, "hash", hash)

	_, _, err = m.GetByLogin(ctx, "boris")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMemory_Books(t *testing.T) {
	ctx := context.Background()
	m := repo.NewMemory()

	id, err := m.SaveBook(ctx, 1, "flight A", []byte(`{"a":1}`))
	require.NoError(t, err)
	_, err = m.SaveBook(ctx, 2, "other", []byte(`{}`))
	require.NoError(t, err)

	list, err := m.ListBooks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "flight A", list[0].Name)

	data, err := m.GetBook(ctx, 1, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	_, err = m.GetBook(ctx, 2, id)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = m.GetBook(ctx, 1, 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
