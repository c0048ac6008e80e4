package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const viewItem = "camera_view"

// SavedView is the camera view stored on disk between runs
type SavedView struct {
	Position [3]float64 `json:"position"`
	Scale    float64    `json:"scale"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for view storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadCameraView loads the last saved view, or nil when there is none
func LoadCameraView() (*SavedView, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(viewItem)
	if err != nil {
		return nil, fmt.Errorf("load camera view: %w", err)
	}
	if data == nil {
		// Nothing saved yet, keep the spawn view
		return nil, nil
	}
	return decodeView(data)
}

// SaveCameraView stores the view of the given camera entity. A missing
// camera saves nothing.
func SaveCameraView(w donburi.World, camera donburi.Entity) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if !w.Valid(camera) {
		return nil
	}
	entry := w.Entry(camera)
	if !entry.HasComponent(components.Camera) {
		return nil
	}

	data, err := encodeView(components.Camera.Get(entry).Rig)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(viewItem, data); err != nil {
		return fmt.Errorf("save camera view: %w", err)
	}
	return nil
}

// RestoreCameraView overwrites a freshly spawned camera with the saved view.
// It must run before the camera rig takes ownership of the camera.
func RestoreCameraView(cameraEntry *donburi.Entry) {
	saved, err := LoadCameraView()
	if err != nil {
		log.Printf("Warning: Could not restore camera view: %v", err)
		return
	}
	if saved == nil {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	applyView(&camera.Rig, saved)
}

func encodeView(s camerarig.State) ([]byte, error) {
	data, err := json.Marshal(SavedView{
		Position: [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
		Scale:    s.Scale,
	})
	if err != nil {
		return nil, fmt.Errorf("encode camera view: %w", err)
	}
	return data, nil
}

func decodeView(data []byte) (*SavedView, error) {
	var v SavedView
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode camera view: %w", err)
	}
	for _, f := range append(v.Position[:], v.Scale) {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("decode camera view: non-finite value %v", f)
		}
	}
	return &v, nil
}

// applyView copies position and scale; yaw stays as spawned and scale is
// clamped like every other write.
func applyView(s *camerarig.State, v *SavedView) {
	s.Position = camerarig.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
	s.Scale = camerarig.ClampScale(v.Scale)
}
