// Command snowview is a minimal live viewer: it runs the engine and
// blits the lattice to a raylib texture every frame, for watching a
// crystal grow interactively instead of inspecting PPM files after the
// fact. It deliberately carries no slider/button GUI — parameter tuning
// belongs to cmd/calibrate, not this tool. Grounded on the teacher's
// cmd/potentialpreview (texture-from-grid update loop) and game/render.go
// (raylib main-loop structure), stripped of raygui widget usage.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/soup/config"
	"github.com/pthm-cable/soup/render"
	"github.com/pthm-cable/soup/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML parameter file (empty = embedded defaults)")
	seed := flag.Int64("seed", 1, "RNG seed")
	ticksPerFrame := flag.Int("speed", 1, "Simulation ticks to advance per rendered frame")
	flag.Parse()

	params, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err := params.Validate(); err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	engine, err := sim.NewEngine(params, *seed)
	if err != nil {
		log.Fatalf("creating engine: %v", err)
	}

	zoom := params.Zoom
	if zoom < 1 {
		zoom = 1
	}
	windowSize := int32(params.L * zoom)

	rl.InitWindow(windowSize, windowSize+30, "snowview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	img := rl.GenImageColor(params.L, params.L, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	pixels := make([]color.RGBA, params.L*params.L)
	paused := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}

		if !paused && !engine.Stopped() {
			for i := 0; i < *ticksPerFrame; i++ {
				engine.Step()
				if engine.Stopped() {
					break
				}
			}
		}

		updatePixels(pixels, engine, params)
		rl.UpdateTexture(texture, pixels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(params.L), Height: float32(params.L)},
			rl.Rectangle{X: 0, Y: 0, Width: float32(windowSize), Height: float32(windowSize)},
			rl.Vector2{X: 0, Y: 0}, 0, rl.White,
		)

		_, rNew := engine.FrontierRadius()
		status := fmt.Sprintf("tick %d  r_new %d  [space] pause", engine.Tick(), rNew)
		if paused {
			status += "  (paused)"
		}
		rl.DrawText(status, 10, windowSize+5, 18, rl.RayWhite)
		rl.EndDrawing()
	}
}

func updatePixels(pixels []color.RGBA, engine *sim.Engine, p config.Parameters) {
	lt := engine.Snapshot()
	odd := engine.Tick()%2 != 0
	for i := 0; i < p.L; i++ {
		for j := 0; j < p.L; j++ {
			c := lt.At(i, j)
			rgb := render.PixelColor(c, p, odd)
			pixels[i*p.L+j] = color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
		}
	}
}
