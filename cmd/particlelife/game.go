package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particlelife"
	"github.com/olivierh59500/particlelife/internal/config"
	"github.com/olivierh59500/particlelife/internal/palette"
)

// Camera constants
const (
	MinZoom  = 0.1 // Limit zoom out to prevent excessive tiling
	ZoomStep = 0.1
)

// Visualization modes
const (
	VisParticles = iota
	VisTrails
	numVisModes
)

// Game drives the engine from the Ebitengine loop
type Game struct {
	engine *particlelife.Engine
	conf   *config.Config
	logger *log.Logger
	colors []color.NRGBA
	sprite *ebiten.Image // white disc tinted per point

	Paused         bool
	VisMode        int
	Zoom           float64
	CamX, CamY     float64 // Camera pan
	PrevMX, PrevMY float64 // Previous mouse position for drag

	trails [][]r2.Vec // last positions per particle, oldest first
}

// NewGame creates a game around a started engine
func NewGame(engine *particlelife.Engine, conf *config.Config, logger *log.Logger) *Game {
	return &Game{
		engine: engine,
		conf:   conf,
		logger: logger,
		colors: palette.Groups(engine.Settings().Groups, conf.Render.Alpha),
		Zoom:   1.0,
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	step, err := g.handleInput()
	if err != nil {
		return err
	}
	if g.Paused && !step {
		return nil
	}

	g.engine.Step(g.conf.Simulation.TimeStep)
	if g.VisMode == VisTrails {
		g.recordTrails()
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	space := g.engine.Space()
	screenWidth := float64(screen.Bounds().Dx())
	screenHeight := float64(screen.Bounds().Dy())

	// Tiles of the torus covering the visible world range
	dxFrom := math.Floor(g.CamX / space.Width)
	dxTo := math.Ceil((g.CamX + screenWidth/g.Zoom) / space.Width)
	dyFrom := math.Floor(g.CamY / space.Height)
	dyTo := math.Ceil((g.CamY + screenHeight/g.Zoom) / space.Height)

	for dx := dxFrom; dx < dxTo; dx++ {
		for dy := dyFrom; dy < dyTo; dy++ {
			offset := r2.Vec{X: dx * space.Width, Y: dy * space.Height}
			switch g.VisMode {
			case VisParticles:
				g.drawParticles(screen, offset, screenWidth, screenHeight)
			case VisTrails:
				g.drawTrails(screen, offset, space, screenWidth, screenHeight)
			}
		}
	}

	g.drawHUD(screen)
}

// Layout returns the screen size, which is the domain size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Settings()
	return s.Width, s.Height
}

// drawParticles draws one tile of points. Points add their light, so
// overlapping points of one group brighten.
func (g *Game) drawParticles(screen *ebiten.Image, offset r2.Vec, screenWidth, screenHeight float64) {
	size := g.conf.Render.PointSize
	if g.sprite == nil {
		g.sprite = newPointSprite(size)
	}
	pop := g.engine.Population()
	for i := range pop.Len() {
		p := pop.At(i)
		sx, sy := g.worldToScreen(r2.Add(p.Position, offset))
		if sx >= -size && sx <= screenWidth+size && sy >= -size && sy <= screenHeight+size {
			op := pointOptions(sx, sy, g.Zoom, g.sprite.Bounds().Dx(), g.colors[p.Group])
			screen.DrawImage(g.sprite, &op)
		}
	}
}

// newPointSprite draws a white disc of the given radius
func newPointSprite(radius float64) *ebiten.Image {
	n := spriteExtent(radius)
	img := ebiten.NewImage(n, n)
	vector.DrawFilledCircle(img, float32(n)/2, float32(n)/2, float32(radius), color.White, true)
	return img
}

// spriteExtent returns the side of a square sprite holding a disc of radius r
func spriteExtent(r float64) int {
	return int(math.Ceil(2*r)) + 2
}

// pointOptions centers a sprite of the given extent on (sx, sy), scales it
// by zoom and tints it with col using additive blending
func pointOptions(sx, sy, zoom float64, extent int, col color.Color) ebiten.DrawImageOptions {
	var op ebiten.DrawImageOptions
	half := float64(extent) / 2
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(col)
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	return op
}

// drawTrails draws one tile of trails, skipping segments that jump across an edge
func (g *Game) drawTrails(screen *ebiten.Image, offset r2.Vec, space particlelife.Space, screenWidth, screenHeight float64) {
	pop := g.engine.Population()
	for i, trail := range g.trails {
		if i >= pop.Len() {
			break
		}
		col := g.colors[pop.At(i).Group]
		for j := 1; j < len(trail); j++ {
			prev, curr := trail[j-1], trail[j]
			if math.Abs(curr.X-prev.X) > space.Width/2 || math.Abs(curr.Y-prev.Y) > space.Height/2 {
				continue
			}
			prevSX, prevSY := g.worldToScreen(r2.Add(prev, offset))
			currSX, currSY := g.worldToScreen(r2.Add(curr, offset))
			if g.visible(prevSX, prevSY, screenWidth, screenHeight) || g.visible(currSX, currSY, screenWidth, screenHeight) {
				vector.StrokeLine(screen, float32(prevSX), float32(prevSY), float32(currSX), float32(currSY), 1, col, true)
			}
		}
	}
}

// drawHUD prints the parameters of the current run
func (g *Game) drawHUD(screen *ebiten.Image) {
	cfg := g.engine.Config()
	status := ""
	if g.Paused {
		status = "  [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"seed %d  friction %.2f  cutoff %.1f  particles %d  fps %.0f%s",
		cfg.Seed, cfg.Slipperiness, cfg.DistanceMax, g.engine.Population().Len(), ebiten.ActualFPS(), status,
	))
}

// handleInput processes keyboard and mouse input and reports whether a
// single step was requested while paused
func (g *Game) handleInput() (step bool, err error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return false, ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Replay()
		g.trails = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.NewPattern()
		g.trails = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.VisMode = (g.VisMode + 1) % numVisModes
		g.trails = nil
		g.logger.Debug("visualization", "mode", g.VisMode)
	}
	step = g.Paused && inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)

	// Zoom
	_, wheelY := ebiten.Wheel()
	g.Zoom = math.Max(g.Zoom+wheelY*ZoomStep, MinZoom)

	// Pan (drag)
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.CamX -= (float64(mx) - g.PrevMX) / g.Zoom
		g.CamY -= (float64(my) - g.PrevMY) / g.Zoom
	}
	g.PrevMX = float64(mx)
	g.PrevMY = float64(my)
	return step, nil
}

// recordTrails appends the current positions to the trails
func (g *Game) recordTrails() {
	pop := g.engine.Population()
	if len(g.trails) != pop.Len() {
		g.trails = make([][]r2.Vec, pop.Len())
	}
	limit := g.conf.Render.TrailLength
	for i := range pop.Len() {
		trail := append(g.trails[i], pop.At(i).Position)
		if len(trail) > limit {
			trail = trail[1:]
		}
		g.trails[i] = trail
	}
}

// worldToScreen applies the camera
func (g *Game) worldToScreen(w r2.Vec) (float64, float64) {
	return (w.X - g.CamX) * g.Zoom, (w.Y - g.CamY) * g.Zoom
}

// visible reports whether a screen point is inside the screen with a 1px margin
func (g *Game) visible(x, y, screenWidth, screenHeight float64) bool {
	return x >= -1 && x <= screenWidth+1 && y >= -1 && y <= screenHeight+1
}
