package cookies

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryJar_KeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	jar := NewMemoryJar(WithMemoryClock(clock))

	require.NoError(t, jar.Write(ctx, FormatLine("a", "1", fixedNow.Add(Day))))
	require.NoError(t, jar.Write(ctx, FormatLine("b", "2", fixedNow.Add(Day))))
	require.NoError(t, jar.Write(ctx, FormatLine("a", "3", fixedNow.Add(Day))))

	raw, err := jar.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a=3; b=2", raw)
}

func TestMemoryJar_ExpiredLineDeletes(t *testing.T) {
	ctx := context.Background()
	jar := NewMemoryJar(WithMemoryClock(clock))

	require.NoError(t, jar.Write(ctx, FormatLine("username", "alice", fixedNow.Add(Day))))
	require.NoError(t, jar.Write(ctx, FormatLine("username", "", fixedNow.Add(-time.Hour))))

	assert.Empty(t, jar.Cookies())
}

func TestMemoryJar_DropsCookiesOnceExpired(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	jar := NewMemoryJar(WithMemoryClock(func() time.Time { return now }))

	require.NoError(t, jar.Write(ctx, FormatLine("username", "alice", fixedNow.Add(7*Day))))
	require.Len(t, jar.Cookies(), 1)

	now = fixedNow.Add(7*Day + time.Second)
	raw, err := jar.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestMemoryJar_SetEnabled(t *testing.T) {
	jar := NewMemoryJar()
	assert.True(t, jar.Enabled())

	jar.SetEnabled(false)
	assert.False(t, jar.Enabled())
}

func TestMemoryJar_RejectsMalformedLine(t *testing.T) {
	err := NewMemoryJar().Write(context.Background(), ";;;")
	assert.ErrorIs(t, err, ErrMalformedLine)
}
