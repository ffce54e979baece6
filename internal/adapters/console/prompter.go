package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	errNoChoices = errors.New("nothing to choose from")
	errClosed    = errors.New("prompter closed")
)

type line struct {
	text string
	err  error
}

type prompter struct {
	in        io.Reader
	out       io.Writer
	lines     chan line
	done      chan struct{}
	stopped   chan struct{}
	once      sync.Once
	closeOnce sync.Once
	logger    *zap.Logger
}

func New(in io.Reader, out io.Writer, logger *zap.Logger) *prompter {
	return &prompter{
		in:      in,
		out:     out,
		lines:   make(chan line, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		logger:  logger,
	}
}

// Close stops handing out input. A reader blocked on the input itself exits
// after its next line.
func (p *prompter) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	return nil
}

func (p *prompter) Choose(ctx context.Context, player *domain.Player, prompt string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, errNoChoices
	}
	p.once.Do(p.startReading)
	p.printPrompt(player, prompt, choices)
	for {
		text, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		idx, err := strconv.Atoi(strings.TrimSpace(text))
		if err == nil && idx >= 0 && idx < len(choices) {
			return idx, nil
		}
		p.logger.Debug("invalid choice", zap.String("input", text), zap.Stringer("player", player))
		fmt.Fprintf(p.out, "please enter a number from 0 to %d: ", len(choices)-1)
	}
}

func (p *prompter) printPrompt(player *domain.Player, prompt string, choices []string) {
	fmt.Fprintf(p.out, "\n%s, %s\n", player, prompt)
	for i, c := range choices {
		fmt.Fprintf(p.out, "\t%d. %s\n", i, c)
	}
	fmt.Fprintf(p.out, "\n%s\n", player.SupplyReport())
}

// startReading feeds input lines to the prompter, so a pending read can be
// abandoned when the context is done.
func (p *prompter) startReading() {
	go func() {
		defer close(p.stopped)
		defer close(p.lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			if !p.send(line{text: scanner.Text()}) {
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		p.send(line{err: err})
	}()
}

func (p *prompter) send(l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}

func (p *prompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", errClosed
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", errors.WithMessage(l.err, "read choice")
		}
		return l.text, nil
	}
}
