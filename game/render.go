package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Vovchek-aks/SnakesEvolv/ui"
)

// Draw renders the field and the side panel, then applies panel actions.
func (g *Game) Draw() {
	if g.gridRenderer == nil {
		return
	}
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.gridRenderer.Draw(g.pop.Cells())

	actions := g.hud.Draw(ui.HUDData{
		Tick:           g.pop.CurrentTick(),
		Snakes:         g.pop.Snakes(),
		Segments:       g.pop.Segments(),
		Food:           g.pop.Food(),
		TargetFood:     g.cfg.Derived.TargetFood,
		BestScore:      g.store.BestScore(),
		LongestLife:    g.pop.LongestLife(),
		MaxGeneration:  g.pop.MaxGeneration(),
		Deaths:         g.deaths,
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
	})

	rl.EndDrawing()
	g.perf.RecordDraw(time.Since(start))

	if actions.TogglePause {
		g.paused = !g.paused
	}
	if actions.Save {
		g.saveStore()
	}
	g.SetStepsPerUpdate(actions.StepsPerUpdate)
}
