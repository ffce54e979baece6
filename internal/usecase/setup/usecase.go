package setup

import (
	"context"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/kiryu-dev/reef-encounter/internal/board"
	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/kiryu-dev/reef-encounter/internal/pool"
	"github.com/kiryu-dev/reef-encounter/internal/supply"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type phase = uint32

const (
	constructed = phase(iota)
	preparing
	prepared
	starting
	started
	failed
)

var phaseNames = map[phase]string{
	constructed: "constructed",
	preparing:   "preparing",
	prepared:    "prepared",
	starting:    "starting",
	started:     "started",
	failed:      "failed",
}

// startingTiles is the number of polyp tiles each player gets, by player count
// and position in the player order.
var startingTiles = map[int][]int{
	2: {6, 9},
	3: {6, 7, 9},
	4: {6, 7, 8, 9},
}

const startingCubes = 2

type options struct {
	rnd      domain.Randomizer
	prompter domain.Prompter
	logger   *zap.Logger
	layouts  []string
}

type Option func(o *options)

func WithRandomizer(rnd domain.Randomizer) Option {
	return func(o *options) {
		o.rnd = rnd
	}
}

func WithPrompter(prompter domain.Prompter) Option {
	return func(o *options) {
		o.prompter = prompter
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLayouts replaces the built-in coral reef boards. No layouts keeps the
// built-in ones.
func WithLayouts(layouts ...string) Option {
	return func(o *options) {
		if len(layouts) > 0 {
			o.layouts = layouts
		}
	}
}

type Game struct {
	id       string
	players  []*domain.Player
	reefs    []*board.Reef
	openSea  *board.OpenSea
	tileBag  *pool.Pool[domain.PolypTile]
	cubes    *supply.Supply[domain.LarvaCube]
	rnd      domain.Randomizer
	prompter domain.Prompter
	logger   *zap.Logger
	phase    *atomic.Uint32
}

func New(numPlayers int, opts ...Option) (*Game, error) {
	if _, ok := startingTiles[numPlayers]; !ok {
		return nil, errors.WithMessagef(domain.ErrInvalidPlayerCount, "%d players, want 2 to 4", numPlayers)
	}
	o := &options{
		logger:  zap.NewNop(),
		layouts: board.Presets(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	players := make([]*domain.Player, 0, numPlayers)
	for _, c := range domain.PlayerKind.Colors()[:numPlayers] {
		p, err := domain.NewPlayer(c)
		if err != nil {
			return nil, errors.WithMessage(err, "new player")
		}
		players = append(players, p)
	}
	o.rnd.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})

	reefs, err := board.ParseAll(o.layouts)
	if err != nil {
		return nil, errors.WithMessage(err, "parse coral reef boards")
	}
	if len(reefs) < numPlayers {
		return nil, errors.WithMessagef(ErrNotEnoughReefs, "%d boards for %d players", len(reefs), numPlayers)
	}
	o.rnd.Shuffle(len(reefs), func(i, j int) {
		reefs[i], reefs[j] = reefs[j], reefs[i]
	})

	id := uuid.NewString()
	tiles := domain.InitialDistribution(domain.PolypTileKind, domain.NewPolypTile)
	cubes := domain.InitialDistribution(domain.LarvaCubeKind, domain.NewLarvaCube)
	g := &Game{
		id:       id,
		players:  players,
		reefs:    reefs[:numPlayers],
		openSea:  board.NewOpenSea(),
		tileBag:  pool.New(domain.PolypTileKind, tiles, o.rnd),
		cubes:    supply.New(domain.LarvaCubeKind, cubes),
		rnd:      o.rnd,
		prompter: o.prompter,
		logger:   o.logger.With(zap.String("game", id)),
		phase:    atomic.NewUint32(constructed),
	}
	g.logger.Info("game created", zap.Int("players", numPlayers))
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Phase() string {
	return phaseNames[g.phase.Load()]
}

// Players returns the players in player order.
func (g *Game) Players() []*domain.Player {
	return g.players
}

func (g *Game) Reefs() []*board.Reef {
	return g.reefs
}

func (g *Game) OpenSea() *board.OpenSea {
	return g.openSea
}

func (g *Game) TileBag() *pool.Pool[domain.PolypTile] {
	return g.tileBag
}

func (g *Game) CubeSupply() *supply.Supply[domain.LarvaCube] {
	return g.cubes
}

// Prepare lays out the starting material. It runs once; after a failure the
// game can not be prepared again.
func (g *Game) Prepare() error {
	if !g.phase.CompareAndSwap(constructed, preparing) {
		return errors.WithMessagef(ErrWrongPhase, "prepare %s game", g.Phase())
	}
	if err := g.prepare(); err != nil {
		g.phase.Store(failed)
		return err
	}
	g.phase.Store(prepared)
	g.logger.Info("game prepared", zap.Int("tiles left", g.tileBag.Size()))
	return nil
}

func (g *Game) prepare() error {
	if err := g.prepareCoralReefBoards(); err != nil {
		return errors.WithMessage(err, "prepare coral reef boards")
	}
	if err := g.prepareOpenSeaBoard(); err != nil {
		return errors.WithMessage(err, "prepare open sea board")
	}
	if err := g.preparePlayerResources(); err != nil {
		return errors.WithMessage(err, "prepare player resources")
	}
	return nil
}

func (g *Game) prepareCoralReefBoards() error {
	g.logger.Info("preparing the coral reef boards...")
	colors := domain.PolypTileKind.Colors()
	for i, reef := range g.reefs {
		tiles, err := g.tileBag.DrawColors(colors...)
		if err != nil {
			return errors.WithMessagef(err, "draw starting tiles for board %d", i+1)
		}
		remaining, err := reef.AddStartingTiles(tiles)
		if err != nil {
			return errors.WithMessagef(err, "add starting tiles to board %d", i+1)
		}
		if len(remaining) > 0 {
			g.tileBag.Replace(remaining...)
		}
	}
	return nil
}

func (g *Game) prepareOpenSeaBoard() error {
	g.logger.Info("preparing the open sea board...")
	for space := range g.openSea.EachSpace() {
		cube, err := g.cubes.DrawColor(space.CubeColor())
		if err != nil {
			return errors.WithMessage(err, "draw larva cube")
		}
		if err := space.PlaceCube(cube); err != nil {
			return errors.WithMessage(err, "place larva cube")
		}
	}

	sizes := board.TileBatches()
	batches := make([][]domain.PolypTile, 0, len(sizes))
	for _, n := range sizes {
		batch, err := g.tileBag.DrawN(n)
		if err != nil {
			return errors.WithMessagef(err, "draw %d polyp tiles", n)
		}
		batches = append(batches, batch)
	}
	g.rnd.Shuffle(len(batches), func(i, j int) {
		batches[i], batches[j] = batches[j], batches[i]
	})
	i := 0
	for space := range g.openSea.EachSpace() {
		space.AddTiles(batches[i]...)
		i++
	}

	for _, tile := range g.openSea.CoralTiles() {
		if g.rnd.Intn(2) == 1 {
			tile.Flip()
		}
	}
	return nil
}

func (g *Game) preparePlayerResources() error {
	g.logger.Info("preparing the player resources...")
	schedule, ok := startingTiles[len(g.players)]
	if !ok {
		return errors.WithMessagef(errUnexpectedPlayers, "%d players", len(g.players))
	}
	for i, p := range g.players {
		tiles, err := g.tileBag.DrawN(schedule[i])
		if err != nil {
			return errors.WithMessagef(err, "draw starting tiles for %s", p)
		}
		behind := p.Screen().Behind
		behind.Tiles = append(behind.Tiles, tiles...)
		g.logger.Debug("dealt starting tiles", zap.Stringer("player", p), zap.Int("tiles", len(tiles)))
	}
	return nil
}

// Start asks every player for their opening picks: a tile for the parrot fish,
// then two larva cubes to keep behind the screen.
func (g *Game) Start(ctx context.Context) error {
	if g.prompter == nil {
		return ErrNoPrompter
	}
	if !g.phase.CompareAndSwap(prepared, starting) {
		return errors.WithMessagef(ErrWrongPhase, "start %s game", g.Phase())
	}
	g.logger.Info("starting game...")
	if err := g.start(ctx); err != nil {
		g.phase.Store(failed)
		return err
	}
	g.phase.Store(started)
	return nil
}

func (g *Game) start(ctx context.Context) error {
	for _, p := range g.players {
		if err := g.feedParrotFish(ctx, p); err != nil {
			return errors.WithMessagef(err, "feed parrot fish of %s", p)
		}
	}
	for _, p := range g.players {
		for range startingCubes {
			if err := g.takeLarvaCube(ctx, p); err != nil {
				return errors.WithMessagef(err, "take larva cube for %s", p)
			}
		}
	}
	return nil
}

func (g *Game) feedParrotFish(ctx context.Context, p *domain.Player) error {
	behind := p.Screen().Behind
	slices.SortStableFunc(behind.Tiles, func(a, b domain.PolypTile) int {
		return int(a.Color()) - int(b.Color())
	})
	choices := make([]string, 0, len(behind.Tiles))
	for _, t := range behind.Tiles {
		choices = append(choices, t.String())
	}
	idx, err := g.prompter.Choose(ctx, p, "please select a polyp tile to put in your parrot fish", choices)
	if err != nil {
		return errors.WithMessage(err, "choose polyp tile")
	}
	if idx < 0 || idx >= len(behind.Tiles) {
		return errors.WithMessagef(ErrInvalidChoice, "tile index %d", idx)
	}
	tile, err := behind.TakeTile(idx)
	if err != nil {
		return errors.WithMessage(err, "take polyp tile")
	}
	p.ParrotFish().Eat(tile)
	g.logger.Debug("parrot fish fed", zap.Stringer("player", p), zap.Stringer("tile", tile))
	return nil
}

func (g *Game) takeLarvaCube(ctx context.Context, p *domain.Player) error {
	colors := domain.LarvaCubeKind.Colors()
	choices := make([]string, 0, len(colors))
	for _, c := range colors {
		choices = append(choices, c.String())
	}
	idx, err := g.prompter.Choose(ctx, p, "please select a larva cube to put behind your player screen", choices)
	if err != nil {
		return errors.WithMessage(err, "choose larva cube")
	}
	if idx < 0 || idx >= len(colors) {
		return errors.WithMessagef(ErrInvalidChoice, "cube index %d", idx)
	}
	cube, err := g.cubes.DrawColor(colors[idx])
	if err != nil {
		return err
	}
	behind := p.Screen().Behind
	behind.Cubes = append(behind.Cubes, cube)
	return nil
}
