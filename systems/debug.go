package systems

import (
	"fmt"

	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/fonts"
	"github.com/automoto/schematic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugTextOp = &text.DrawOptions{}

// DrawDebug renders the camera HUD and a gizmo for every light.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := tags.SchematicCamera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	tags.Light.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		x, y := camera.Rig.WorldToScreen(pos, width, height)
		vector.StrokeCircle(screen, float32(x), float32(y), cfg.UI.GizmoRadius, 1.5, cfg.UI.GizmoColor, true)
	})

	if !fonts.Loaded(fonts.HUD) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	cursor := camera.Rig.ScreenToWorld(float64(cx), float64(cy), width, height)
	lines := debugLines(camera, cursor.X, cursor.Y, countTriangles(ecs.World))

	margin := cfg.UI.HUDMargin
	lineH := cfg.UI.HUDLineHeight
	vector.DrawFilledRect(screen,
		float32(margin/2), float32(margin/2),
		260, float32(lineH*float64(len(lines))+margin),
		cfg.UI.HUDBgColor, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		debugTextOp.GeoM.Reset()
		debugTextOp.ColorScale.Reset()
		debugTextOp.GeoM.Translate(margin, margin+lineH*float64(i))
		debugTextOp.ColorScale.ScaleWithColor(cfg.UI.HUDTextColor)
		text.Draw(screen, line, face, debugTextOp)
	}
}

func debugLines(camera *components.CameraData, cursorX, cursorY float64, triangles int) []string {
	p := camera.Rig.Position
	return []string{
		fmt.Sprintf("scale     %.4f", camera.Rig.Scale),
		fmt.Sprintf("position  %.2f, %.2f, %.2f", p.X, p.Y, p.Z),
		fmt.Sprintf("cursor    %.2f, %.2f", cursorX, cursorY),
		fmt.Sprintf("triangles %d", triangles),
		fmt.Sprintf("fps       %.0f", ebiten.ActualFPS()),
	}
}

func countTriangles(w donburi.World) int {
	n := 0
	tags.Shape.Each(w, func(e *donburi.Entry) {
		if m := components.Mesh.Get(e).Mesh; m != nil {
			n += m.TriangleCount()
		}
	})
	return n
}
