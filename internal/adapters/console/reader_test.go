package console

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func waitStopped(t *testing.T, p *prompter) {
	t.Helper()
	select {
	case <-p.stopped:
	case <-time.After(time.Second):
		t.Fatal("input reader is still running")
	}
}

func choose(t *testing.T, p *prompter, ctx context.Context) (int, error) {
	t.Helper()
	player, err := domain.NewPlayer(domain.Red)
	require.NoError(t, err)
	return p.Choose(ctx, player, "pick", []string{"grey", "pink", "white"})
}

func TestReaderStopsAtEndOfInput(t *testing.T) {
	p := New(strings.NewReader("2\n"), io.Discard, zaptest.NewLogger(t))
	idx, err := choose(t, p, context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, idx)
	waitStopped(t, p)
}

func TestReaderStopsOnClose(t *testing.T) {
	p := New(strings.NewReader("0\n1\n2\n"), io.Discard, zaptest.NewLogger(t))
	idx, err := choose(t, p, context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	waitStopped(t, p)
}

func TestReaderStopsAfterCancel(t *testing.T) {
	r, w := io.Pipe()
	p := New(r, io.Discard, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := choose(t, p, ctx)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)

	require.NoError(t, p.Close())
	_, err = w.Write([]byte("1\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	waitStopped(t, p)
}

func TestChooseAfterClose(t *testing.T) {
	r, w := io.Pipe()
	p := New(r, io.Discard, zaptest.NewLogger(t))
	require.NoError(t, p.Close())
	_, err := choose(t, p, context.Background())
	require.True(t, errors.Is(err, errClosed), "got %v", err)

	require.NoError(t, w.Close())
	waitStopped(t, p)
}
