package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/kiryu-dev/reef-encounter/internal/adapters/console"
	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newPlayer(t *testing.T) *domain.Player {
	t.Helper()
	player, err := domain.NewPlayer(domain.Green)
	require.NoError(t, err)
	return player
}

func TestChoose(t *testing.T) {
	var out bytes.Buffer
	p := console.New(strings.NewReader("1\n"), &out, zaptest.NewLogger(t))

	idx, err := p.Choose(context.Background(), newPlayer(t), "pick a cube", []string{"grey", "pink"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "Green player, pick a cube\n")
	assert.Contains(t, out.String(), "\t0. grey\n\t1. pink\n")
	assert.Contains(t, out.String(), "Behind Screen: 4 shrimp")
}

func TestChooseRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := console.New(strings.NewReader("abc\n7\n-1\n 0 \n"), &out, zaptest.NewLogger(t))

	idx, err := p.Choose(context.Background(), newPlayer(t), "pick", []string{"grey", "pink"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 3, strings.Count(out.String(), "please enter a number from 0 to 1"))
}

func TestChooseSequential(t *testing.T) {
	p := console.New(strings.NewReader("2\n0\n"), io.Discard, zaptest.NewLogger(t))
	choices := []string{"a", "b", "c"}

	idx, err := p.Choose(context.Background(), newPlayer(t), "first", choices)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = p.Choose(context.Background(), newPlayer(t), "second", choices)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestChooseEOF(t *testing.T) {
	p := console.New(strings.NewReader("x\n"), io.Discard, zaptest.NewLogger(t))
	_, err := p.Choose(context.Background(), newPlayer(t), "pick", []string{"grey"})
	require.True(t, errors.Is(err, io.EOF), "got %v", err)
}

func TestChooseNoChoices(t *testing.T) {
	p := console.New(strings.NewReader("0\n"), io.Discard, zaptest.NewLogger(t))
	_, err := p.Choose(context.Background(), newPlayer(t), "pick", nil)
	require.Error(t, err)
}

func TestChooseCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer func() {
		_ = w.Close()
	}()
	p := console.New(r, io.Discard, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Choose(ctx, newPlayer(t), "pick", []string{"grey"})
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
