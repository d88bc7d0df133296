package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
)

// MaxStepsPerUpdate bounds the speed slider.
const MaxStepsPerUpdate = 20

// HUDData holds everything the side panel shows.
type HUDData struct {
	Tick           int32
	Snakes         int
	Segments       int
	Food           int
	TargetFood     int
	BestScore      int
	LongestLife    int
	MaxGeneration  int
	Deaths         int
	StepsPerUpdate int
	FPS            int32
	Paused         bool
}

// HUDActions reports what the user did with the panel controls this frame.
type HUDActions struct {
	TogglePause    bool
	Save           bool
	StepsPerUpdate int
}

// HUD renders the side panel to the right of the field.
type HUD struct {
	renderer *Renderer
	x        int32
	width    int32
	height   int32
}

// NewHUD creates a panel at x spanning width by height pixels.
func NewHUD(x, width, height int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		width:    width,
		height:   height,
	}
}

// Draw renders the panel and its controls and returns the user's input.
func (h *HUD) Draw(data HUDData) HUDActions {
	r := h.renderer
	pad := r.Theme.Padding
	x := h.x + pad
	inner := h.width - 2*pad

	r.DrawPanel(h.x, 0, h.width, h.height)

	y := pad
	rl.DrawText("Snakes", x, y, 20, rl.White)
	y += 28

	y = r.DrawSectionHeader(x, y, "Population")
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d", data.Tick))
	y = r.DrawLabelValue(x, y, "Snakes", fmt.Sprintf("%d", data.Snakes))
	y = r.DrawLabelValue(x, y, "Segments", fmt.Sprintf("%d", data.Segments))
	y = r.DrawLabelValue(x, y, "Generation", fmt.Sprintf("%d", data.MaxGeneration))
	y = r.DrawRatioBar(x, y, "Food", data.Food, data.TargetFood, inner)
	y += pad

	y = r.DrawSectionHeader(x, y, "Fitness")
	y = r.DrawLabelValue(x, y, "Best", fmt.Sprintf("%d", data.BestScore))
	y = r.DrawLabelValue(x, y, "Longest alive", fmt.Sprintf("%d", data.LongestLife))
	y = r.DrawLabelValue(x, y, "Deaths", fmt.Sprintf("%d", data.Deaths))
	y += pad

	y = r.DrawSectionHeader(x, y, "Controls")
	var actions HUDActions

	pauseText := "Pause"
	if data.Paused {
		pauseText = "Resume"
	}
	half := float32(inner-pad) / 2
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: half, Height: 26}, pauseText) {
		actions.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: float32(x) + half + float32(pad), Y: float32(y), Width: half, Height: 26}, "Save") {
		actions.Save = true
	}
	y += 36

	rl.DrawText("Steps per frame", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += 16
	steps := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(inner - 30), Height: 16},
		"", fmt.Sprintf("%d", data.StepsPerUpdate),
		float32(data.StepsPerUpdate), 1, MaxStepsPerUpdate,
	)
	actions.StepsPerUpdate = clampSteps(int(steps + 0.5))
	y += 28

	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	rl.DrawText(status, x, y, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), x, h.height-44, r.Theme.FontSize, rl.Gray)
	rl.DrawText("Space pause  , . speed", x, h.height-24, r.Theme.FontSize, rl.Gray)

	return actions
}

// clampSteps keeps a steps-per-update value within the slider range.
func clampSteps(n int) int {
	return min(max(n, 1), MaxStepsPerUpdate)
}
