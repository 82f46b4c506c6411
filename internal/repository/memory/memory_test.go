package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedium_ReadWriteRemove(t *testing.T) {
	ctx := context.Background()
	m := New()

	_, found, err := m.Read(ctx, "my-admin-todos")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Write(ctx, "my-admin-todos", `[]`))
	require.NoError(t, m.Write(ctx, "my-admin-todos", `[{"id":1}]`))

	text, found, err := m.Read(ctx, "my-admin-todos")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, text)

	require.NoError(t, m.Remove(ctx, "my-admin-todos"))
	require.NoError(t, m.Remove(ctx, "missing"))

	_, found, _ = m.Read(ctx, "my-admin-todos")
	assert.False(t, found)
	assert.NoError(t, m.Close())
}

func TestMedium_Keys(t *testing.T) {
	ctx := context.Background()
	m := New()
	require.NoError(t, m.Write(ctx, "b", "1"))
	require.NoError(t, m.Write(ctx, "a", "2"))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
}
