package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboost/pkg/auth"
)

func TestMemoryStore_IssueResolve(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, "a@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email)
}

func TestMemoryStore_ResolveUnknown(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Resolve(context.Background(), "nope")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestMemoryStore_TokensPerEmailAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Issue(ctx, "a@example.com")
	require.NoError(t, err)
	second, err := store.Issue(ctx, "a@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, store.Revoke(ctx, first))

	_, err = store.Resolve(ctx, first)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
	email, err := store.Resolve(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email)
}

func TestMemoryStore_RevokeUnknownIsNoop(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Revoke(ctx, "never-issued"))

	token, err := store.Issue(ctx, "a@example.com")
	require.NoError(t, err)
	require.NoError(t, store.Revoke(ctx, token))
	assert.NoError(t, store.Revoke(ctx, token))
}

func TestMemoryStore_ConcurrentIssueRevoke(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	tokens := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := store.Issue(ctx, "a@example.com")
			if err == nil {
				tokens <- token
			}
		}()
	}
	wg.Wait()
	close(tokens)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, n)

	for token := range tokens {
		wg.Add(1)
		go func(tok string) {
			defer wg.Done()
			_ = store.Revoke(ctx, tok)
		}(token)
	}
	wg.Wait()

	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
