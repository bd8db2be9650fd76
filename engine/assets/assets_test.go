package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/anima-bake/engine/animation"
	"github.com/spaghettifunk/anima-bake/engine/containers"
	"github.com/spaghettifunk/anima-bake/engine/hapi"
)

const sampleDoc = `
object:
  id: 3
  name: geo1
  visible: true
asset:
  id: 7
  name: rocks
frame_rate: 24
parent:
  position: [1, 0, 0]
samples:
  - time: 0.5
    position: [1, 2, 3]
    rotation: [0, 0, 0, 1]
    scale: [2, 2, 2]
  - time: 0
    position: [0, 0, 0]
`

func TestDecodeSamples(t *testing.T) {
	sf, err := DecodeSamples([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("DecodeSamples: %v", err)
	}
	if sf.Object != (ObjectInfo{ID: 3, Name: "geo1", Visible: true}) || sf.Asset != (AssetRef{ID: 7, Name: "rocks"}) {
		t.Errorf("header = %+v %+v", sf.Object, sf.Asset)
	}
	if sf.FrameRate != 24 || len(sf.Samples) != 2 {
		t.Fatalf("frame_rate=%v samples=%d", sf.FrameRate, len(sf.Samples))
	}
	if sf.Parent == nil || sf.Parent.Position != [3]float32{1, 0, 0} || sf.Parent.RotationQuaternion != [4]float32{0, 0, 0, 1} {
		t.Errorf("parent = %+v", sf.Parent)
	}
	if got := sf.Samples[0]; got.Time != 0.5 || got.Scale != [3]float32{2, 2, 2} {
		t.Errorf("first sample = %+v", got)
	}
	// Left out rotation and scale default to identity.
	if got := sf.Samples[1].Transform; got != hapi.NewTransform() {
		t.Errorf("second sample = %+v, want identity", got)
	}
}

func TestDecodeSamplesErrors(t *testing.T) {
	tests := map[string]string{
		"no samples":    "object: {id: 1}\nsamples: []\n",
		"unknown field": "object: {id: 1}\ncolour: red\nsamples:\n  - time: 0\n    position: [0, 0, 0]\n",
		"short vector":  "samples:\n  - time: 0\n    position: [0, 0]\n",
		"not yaml":      "samples: [",
	}
	for name, doc := range tests {
		if _, err := DecodeSamples([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestSamplesSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geo"+SamplesExt)
	want := &SampleFile{
		Object:    ObjectInfo{ID: 1, Name: "geo"},
		FrameRate: 30,
		Samples:   []hapi.Sample{{Time: 0, Transform: hapi.NewTransform()}, {Time: 1, Transform: hapi.NewTransform()}},
	}
	if err := SaveSamples(path, want); err != nil {
		t.Fatalf("SaveSamples: %v", err)
	}
	got, err := LoadSamples(path)
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if got.Object != want.Object || got.Parent != nil || len(got.Samples) != 2 || got.Samples[1] != want.Samples[1] {
		t.Errorf("loaded %+v", got)
	}

	if _, err := LoadSamples(filepath.Join(t.TempDir(), "missing"+SamplesExt)); err == nil {
		t.Error("missing file should fail")
	}
}

func TestClipSaveLoad(t *testing.T) {
	cc := animation.NewCurveCollection()
	cc.AddSample(0, [10]float32{0, 1, 2, 0, 0, 0, 1, 1, 1, 1})
	cc.AddSample(2, [10]float32{5, 1, 2, 0, 0, 0, 1, 1, 1, 1})
	clip, err := cc.AssignCurvesToClip("take")
	if err != nil {
		t.Fatal(err)
	}
	clip.FrameRate = 24
	clip.WrapMode = animation.WrapLoop

	path := filepath.Join(t.TempDir(), "take"+ClipExt)
	if err := SaveClip(path, clip); err != nil {
		t.Fatalf("SaveClip: %v", err)
	}
	got, err := LoadClip(path)
	if err != nil {
		t.Fatalf("LoadClip: %v", err)
	}

	if got.ID != clip.ID || got.Name != "take" || got.FrameRate != 24 || got.WrapMode != animation.WrapLoop {
		t.Errorf("header = %v %q %v %v", got.ID, got.Name, got.FrameRate, got.WrapMode)
	}
	if got.Length() != 2 || len(got.Properties()) != 10 {
		t.Errorf("length=%v properties=%v", got.Length(), got.Properties())
	}
	if v := got.Evaluate(animation.PropertyPositionX, 2, -1); v != 5 {
		t.Errorf("tx(2) = %v, want 5", v)
	}
}

func TestDecodeClipBadID(t *testing.T) {
	if _, err := DecodeClip([]byte("id: not-a-uuid\nname: x\n")); err == nil {
		t.Error("invalid id should fail")
	}
	if _, err := DecodeClip([]byte("name: x\nwrap_mode: bounce\n")); err == nil {
		t.Error("invalid wrap mode should fail")
	}
}

func TestDetermineAssetType(t *testing.T) {
	tests := map[string]AssetType{
		"a/geo.samples.yaml": AssetTypeSamples,
		"take.clip.yaml":     AssetTypeClip,
		"notes.yaml":         AssetTypeNone,
		"texture.png":        AssetTypeNone,
	}
	for path, want := range tests {
		if got := determineAssetType(path); got != want {
			t.Errorf("determineAssetType(%q) = %v, want %v", path, got, want)
		}
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestAssetManagerQueuesChangedSamples(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "old"+SamplesExt)
	if err := os.WriteFile(existing, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	am, err := NewAssetManager(containers.NewRingQueue[string](8))
	if err != nil {
		t.Fatalf("NewAssetManager: %v", err)
	}
	defer am.Shutdown()
	if err := am.Initialize(dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if !am.Pending().IsEmpty() {
		t.Error("files present at start should not be queued")
	}
	if got := am.Assets(); len(got) != 1 || got[0].Type != AssetTypeSamples {
		t.Errorf("index = %+v", got)
	}

	fresh := filepath.Join(dir, "new"+SamplesExt)
	if err := os.WriteFile(fresh, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644)

	waitFor(t, func() bool { return !am.Pending().IsEmpty() })
	path, _ := am.Pending().Dequeue()
	if path != fresh {
		t.Errorf("queued %q, want %q", path, fresh)
	}

	loaded, err := am.LoadAsset(path)
	if err != nil {
		t.Fatalf("LoadAsset: %v", err)
	}
	if sf, ok := loaded.(*SampleFile); !ok || sf.Object.Name != "geo1" {
		t.Errorf("LoadAsset returned %#v", loaded)
	}
	if _, err := am.LoadAsset(filepath.Join(dir, "ignored.txt")); err == nil {
		t.Error("unindexed files should not load")
	}
}
