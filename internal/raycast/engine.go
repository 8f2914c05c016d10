package raycast

import (
	"math"
	"sync"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// DefaultFOV is the horizontal field of view in radians.
const DefaultFOV = math.Pi / 3.5

// Options configures the frame pipeline.
type Options struct {
	FOV         float64 // radians
	ColumnWidth int     // pixels per ray
	MaxDistance float64 // cells
	Falloff     float64
	StartOffset float64
	Background  core.Color
	Motion      Motion
	Minimap     MinimapOptions
	Debug       bool // draw the minimap
	Workers     int  // goroutines casting columns; <= 1 is sequential
}

// DefaultOptions returns the stock pipeline settings.
func DefaultOptions() Options {
	return Options{
		FOV:         DefaultFOV,
		ColumnWidth: 1,
		MaxDistance: DefaultMaxDistance,
		Falloff:     DefaultFalloff,
		StartOffset: Epsilon,
		Background:  core.Black,
		Motion:      DefaultMotion(),
		Minimap:     DefaultMinimapOptions(),
		Workers:     1,
	}
}

// Stats accumulates per-session counters.
type Stats struct {
	Frames   int
	Distance float64 // cells travelled
	Elapsed  float64 // seconds of simulated time
}

// column is the cast result for one screen column.
type column struct {
	slice Slice
	ok    bool
	steps []Step
}

// Engine owns the camera and renders frames of a world.
// An Engine is not safe for concurrent use.
type Engine struct {
	world *world.World
	cam   Camera
	opts  Options
	debug bool
	stats Stats

	toggleHeld bool
	columns    []column
}

// NewEngine creates an engine looking at w from cam.
func NewEngine(w *world.World, cam Camera, opts Options) *Engine {
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = 1
	}
	if opts.FOV <= 0 {
		opts.FOV = DefaultFOV
	}
	return &Engine{
		world: w,
		cam:   cam,
		opts:  opts,
		debug: opts.Debug,
	}
}

// World returns the rendered world.
func (e *Engine) World() *world.World {
	return e.world
}

// Camera returns the current pose.
func (e *Engine) Camera() Camera {
	return e.cam
}

// Options returns the pipeline settings.
func (e *Engine) Options() Options {
	return e.opts
}

// Debug reports whether the minimap is drawn.
func (e *Engine) Debug() bool {
	return e.debug
}

// SetDebug turns the minimap on or off.
func (e *Engine) SetDebug(on bool) {
	e.debug = on
}

// ToggleDebug flips the minimap flag.
func (e *Engine) ToggleDebug() {
	e.debug = !e.debug
}

// Stats returns the accumulated counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Frame runs one pipeline iteration: update the camera from in, then draw
// into dst. ActionToggleMinimap flips debug mode once per press.
func (e *Engine) Frame(dst core.Renderer, in core.InputFrame, dt float64) {
	e.Update(in, dt)
	e.Render(dst)
}

// Update advances the camera by dt seconds.
func (e *Engine) Update(in core.InputFrame, dt float64) {
	toggle := in.Has(core.ActionToggleMinimap)
	if toggle && !e.toggleHeld {
		e.ToggleDebug()
	}
	e.toggleHeld = toggle

	if dt < 0 {
		dt = 0
	}
	prev := e.cam.Pos
	e.cam = e.cam.Update(in, dt, e.opts.Motion)
	e.stats.Distance += e.cam.Pos.Sub(prev).Len()
	e.stats.Elapsed += dt
}

// Columns returns the number of rays cast for a screen width.
func (e *Engine) Columns(width int) int {
	if width <= 0 {
		return 0
	}
	return (width + e.opts.ColumnWidth - 1) / e.opts.ColumnWidth
}

// Render draws the current view into dst without moving the camera.
func (e *Engine) Render(dst core.Renderer) {
	width, height := dst.Size()
	dst.Clear(e.opts.Background)
	e.stats.Frames++
	if width <= 0 || height <= 0 {
		return
	}

	n := e.Columns(width)
	if cap(e.columns) < n {
		e.columns = make([]column, n)
	}
	e.columns = e.columns[:n]

	caster := Caster{
		World:       e.world,
		MaxDistance: e.opts.MaxDistance,
		Aspect:      float64(width) / float64(height),
		StartOffset: e.opts.StartOffset,
	}
	proj := Projector{ScreenH: float64(height), Falloff: e.opts.Falloff}
	trace := e.debug && e.opts.Minimap.ShowRays

	e.castColumns(n, func(i int) {
		col := &e.columns[i]
		col.steps = col.steps[:0]

		angle := -e.opts.FOV/2 + e.opts.FOV*float64(i)/float64(n)
		dir := e.cam.Dir.Rotate(angle)

		var hit Hit
		if trace {
			hit = caster.Trace(e.cam, dir, func(s Step) {
				col.steps = append(col.steps, s)
			})
		} else {
			hit = caster.Cast(e.cam, dir)
		}

		col.ok = false
		if hit.OK {
			col.slice, col.ok = proj.Project(hit.Distance, hit.Cell)
		}
	})

	w := e.opts.ColumnWidth
	for i, col := range e.columns {
		if !col.ok {
			continue
		}
		top := int(math.Round(col.slice.Top))
		h := int(math.Round(col.slice.Height))
		dst.FillRect(i*w, top, w, h, col.slice.Color)
	}

	if e.debug {
		var rays [][]Step
		if trace {
			rays = make([][]Step, n)
			for i := range e.columns {
				rays[i] = e.columns[i].steps
			}
		}
		DrawMinimap(dst, e.world, e.cam, rays, e.opts.Minimap)
	}
}

// castColumns calls fn for every column index, spread across workers.
// Each call touches only its own column.
func (e *Engine) castColumns(n int, fn func(i int)) {
	workers := core.Min(e.opts.Workers, n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := core.Min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
