package systems

import (
	"testing"

	"github.com/automoto/schematic/camerarig"
)

func TestViewRoundTrip(t *testing.T) {
	s := camerarig.NewState()
	s.Position = camerarig.Vec3{X: 12.5, Y: -3, Z: -2}
	s.Scale = 0.25

	data, err := encodeView(s)
	if err != nil {
		t.Fatal(err)
	}
	v, err := decodeView(data)
	if err != nil {
		t.Fatal(err)
	}

	restored := camerarig.NewState()
	applyView(&restored, v)
	if restored != s {
		t.Fatalf("expected %+v, got %+v", s, restored)
	}
}

func TestDecodeView(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", `{"position":[1,2,3],"scale":0.5}`, false},
		{"garbage", `not json`, true},
		{"wrong_shape", `{"position":"left"}`, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := decodeView([]byte(c.data))
			if (err != nil) != c.wantErr {
				t.Fatalf("wantErr %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestApplyViewClampsScale(t *testing.T) {
	cases := []struct {
		scale float64
		want  float64
	}{
		{5, camerarig.MaxScale},
		{0, camerarig.MinScale},
		{-1, camerarig.MinScale},
		{0.3, 0.3},
	}
	for _, c := range cases {
		s := camerarig.NewState()
		applyView(&s, &SavedView{Scale: c.scale})
		if s.Scale != c.want {
			t.Fatalf("scale %v: expected %v, got %v", c.scale, c.want, s.Scale)
		}
		if s.Yaw != camerarig.InitialYaw {
			t.Fatalf("yaw changed to %v", s.Yaw)
		}
	}
}

func TestPersistenceDisabled(t *testing.T) {
	// Without InitPersistence nothing is read or written.
	v, err := LoadCameraView()
	if v != nil || err != nil {
		t.Fatalf("expected nil view and error, got %v %v", v, err)
	}
	e := newTestECS()
	if err := SaveCameraView(e.World, 0); err != nil {
		t.Fatal(err)
	}
}
