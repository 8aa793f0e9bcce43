package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
)

const frame = 1.0 / 60

// floorRow builds the reference floor: 64px tiles centered every 64px along y=32
func floorRow(from, to int) []Tile {
	var tiles []Tile
	for x := from; x < to; x += 64 {
		tiles = append(tiles, Tile{Box: geom.FromCenter(float64(x), 32, 64, 64), Ref: "grassMid"})
	}
	return tiles
}

func newWorld(t *testing.T, tiles []Tile) *TileWorld {
	t.Helper()
	w, err := New(tiles, DefaultConfig())
	require.NoError(t, err)
	return w
}

func TestNewRejectsInvalidGeometry(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrNoTiles)

	_, err = New([]Tile{{Box: geom.Box{CX: 0, CY: 0, HW: -1, HH: 4}}}, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = New([]Tile{{Box: geom.Box{CX: math.NaN(), CY: 0, HW: 1, HH: 4}}}, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = New([]Tile{{Box: geom.Box{CX: 0, CY: 0, HW: 0, HH: 4}}}, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestQueryReturnsOnlyOverlapping(t *testing.T) {
	w := newWorld(t, floorRow(0, 1000))
	require.Equal(t, 16, w.Len())

	got := w.Query(geom.FromEdges(100, 0, 170, 10))
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.Empty(t, w.Query(geom.FromEdges(100, 64, 140, 200)), "region resting on the floor top touches but does not overlap")
	assert.Empty(t, w.Query(geom.FromEdges(-5000, -5000, -4000, -4000)))
	assert.Empty(t, w.Query(geom.Box{CX: 100, CY: 30}), "degenerate region")
}

func TestQueryMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var tiles []Tile
	for i := 0; i < 300; i++ {
		tiles = append(tiles, Tile{Box: geom.FromCenter(rng.Float64()*2000-500, rng.Float64()*1200-200, 8+rng.Float64()*90, 8+rng.Float64()*90)})
	}
	w := newWorld(t, tiles)

	for i := 0; i < 200; i++ {
		region := geom.FromCenter(rng.Float64()*2400-700, rng.Float64()*1600-400, rng.Float64()*300, rng.Float64()*300)
		var want []int
		for _, tile := range w.Tiles() {
			if geom.Overlaps(tile.Box, region) {
				want = append(want, tile.ID)
			}
		}
		var gotIDs []int
		for _, tile := range w.Query(region) {
			gotIDs = append(gotIDs, tile.ID)
		}
		require.Equal(t, want, gotIDs, "region %+v", region)
	}
}

func TestResolveRestingOnTile(t *testing.T) {
	w := newWorld(t, floorRow(0, 1000))
	a := core.NewActor(64, 128, 64, 128, 1)
	a.VY = -60 // one tick of gravity

	contact, err := w.Resolve(a, frame)
	require.NoError(t, err)
	assert.True(t, contact.OnGround)
	assert.Zero(t, a.VY)
	assert.InDelta(t, 64.0, a.Box().Bottom(), geom.Epsilon)
}

func TestResolveLandingFromFall(t *testing.T) {
	w := newWorld(t, floorRow(0, 1000))
	a := core.NewActor(300, 400, 32, 64, 1)

	landed := false
	for i := 0; i < 120 && !landed; i++ {
		a.VY -= 3600 * frame
		contact, err := w.Resolve(a, frame)
		require.NoError(t, err)
		landed = contact.OnGround
	}
	require.True(t, landed)
	assert.InDelta(t, 64.0, a.Box().Bottom(), geom.Epsilon)
	assert.Zero(t, a.VY)
}

func TestResolveCeiling(t *testing.T) {
	tiles := append(floorRow(0, 640), Tile{Box: geom.FromEdges(0, 300, 640, 364)})
	w := newWorld(t, tiles)
	a := core.NewActor(200, 250, 32, 64, 1)
	a.VY = 1200

	contact, err := w.Resolve(a, frame)
	require.NoError(t, err)
	assert.True(t, contact.BlockedAbove)
	assert.False(t, contact.OnGround)
	assert.Zero(t, a.VY)
	assert.InDelta(t, 300.0, a.Box().Top(), geom.Epsilon)
}

func TestResolveWallBlocksHorizontal(t *testing.T) {
	tiles := append(floorRow(0, 640), Tile{Box: geom.FromEdges(400, 64, 464, 256)})
	w := newWorld(t, tiles)
	a := core.NewActor(370, 96, 32, 64, 1)
	a.VX = 300

	var contact core.ContactState
	var err error
	for i := 0; i < 30; i++ {
		a.VX = 300
		contact, err = w.Resolve(a, frame)
		require.NoError(t, err)
	}
	assert.True(t, contact.BlockedRight)
	assert.Zero(t, a.VX)
	assert.InDelta(t, 400.0, a.Box().Right(), geom.Epsilon)

	a.VX = -300
	contact, err = w.Resolve(a, frame)
	require.NoError(t, err)
	assert.False(t, contact.BlockedRight)
	assert.Less(t, a.Box().Right(), 400.0)
}

func TestResolveWalksAcrossTileSeams(t *testing.T) {
	w := newWorld(t, floorRow(0, 1000))
	a := core.NewActor(64, 96, 32, 64, 1)

	for i := 0; i < 90; i++ {
		a.VX = 300
		a.VY -= 3600 * frame
		contact, err := w.Resolve(a, frame)
		require.NoError(t, err)
		require.False(t, contact.BlockedRight, "ghost wall at x=%v", a.X)
		require.True(t, contact.OnGround)
	}
	assert.InDelta(t, 64+300*90*frame, a.X, 1e-6)
}

func TestResolveNoTunnelling(t *testing.T) {
	w := newWorld(t, []Tile{{Box: geom.FromEdges(0, 0, 1000, 16)}})
	a := core.NewActor(500, 200, 16, 16, 1)
	a.VY = -60000 // 1000 px in one frame

	contact, err := w.Resolve(a, frame)
	require.NoError(t, err)
	assert.True(t, contact.OnGround)
	assert.InDelta(t, 16.0, a.Box().Bottom(), geom.Epsilon)
}

func TestResolveEjectsEmbeddedActor(t *testing.T) {
	w := newWorld(t, floorRow(0, 640))
	a := core.NewActor(200, 60, 32, 64, 1) // bottom at 28, sunk 36 into floor

	contact, err := w.Resolve(a, frame)
	require.NoError(t, err)
	assert.True(t, contact.OnGround)
	assert.InDelta(t, 64.0, a.Box().Bottom(), geom.Epsilon)
	for _, tile := range w.Tiles() {
		assert.False(t, penetrating(a.Box(), tile.Box), "still inside tile %d", tile.ID)
	}
}

func TestResolveRejectsInvalidState(t *testing.T) {
	w := newWorld(t, floorRow(0, 640))

	a := core.NewActor(200, 200, 32, 64, 1)
	a.VX = math.NaN()
	_, err := w.Resolve(a, frame)
	assert.ErrorIs(t, err, ErrInvalidActor)

	b := core.NewActor(200, 200, 32, 64, 1)
	_, err = w.Resolve(b, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidActor)

	c := core.NewActor(200, 200, 32, 64, 1)
	c.HW = -1
	_, err = w.Resolve(c, frame)
	assert.ErrorIs(t, err, ErrInvalidActor)
}

func TestResolveEjectionAvoidsNeighbourTile(t *testing.T) {
	// Pushing up out of the lower tile lands inside the upper one, the 8px gap cannot hold the actor
	w := newWorld(t, []Tile{
		{Box: geom.FromCenter(0, 0, 64, 64)},
		{Box: geom.FromCenter(0, 60, 64, 40)},
	})
	a := core.NewActor(0, 20, 20, 20, 1)

	contact, err := w.Resolve(a, 1e-9)
	require.NoError(t, err)
	for _, tile := range w.Tiles() {
		iw, ih := geom.Intersection(a.Box(), tile.Box)
		assert.False(t, penetrating(a.Box(), tile.Box), "tile %d overlap %vx%v", tile.ID, iw, ih)
	}
	assert.InDelta(t, 32.0, a.Box().Left(), geom.Epsilon, "shortest clear escape is beside the lower tile")
	assert.InDelta(t, 20.0, a.Y, geom.Epsilon)
	assert.True(t, contact.BlockedLeft)
	assert.False(t, contact.OnGround)
}

func TestResolveRestingContactWithoutPenetration(t *testing.T) {
	w := newWorld(t, floorRow(0, 1000))

	// Tiny dt sinks the actor less than Epsilon
	a := core.NewActor(64, 128, 64, 128, 1)
	a.VY = -3600 * 1e-5
	contact, err := w.Resolve(a, 1e-5)
	require.NoError(t, err)
	assert.True(t, contact.OnGround)
	assert.Zero(t, a.VY)

	// Exactly touching with no vertical motion
	b := core.NewActor(64, 128, 64, 128, 1)
	contact, err = w.Resolve(b, frame)
	require.NoError(t, err)
	assert.True(t, contact.OnGround)

	// Rising actors and actors past the ledge are not supported
	c := core.NewActor(64, 128, 64, 128, 1)
	c.VY = 10
	contact, err = w.Resolve(c, 1e-9)
	require.NoError(t, err)
	assert.False(t, contact.OnGround)

	d := core.NewActor(2000, 128, 64, 128, 1)
	contact, err = w.Resolve(d, frame)
	require.NoError(t, err)
	assert.False(t, contact.OnGround)
}
