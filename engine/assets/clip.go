package assets

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/anima-bake/engine/animation"
)

const ClipExt = ".clip.yaml"

type clipCurve struct {
	Property string               `yaml:"property"`
	Keys     []animation.Keyframe `yaml:"keys"`
}

type clipDocument struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	FrameRate float32     `yaml:"frame_rate"`
	WrapMode  string      `yaml:"wrap_mode"`
	Length    float32     `yaml:"length"`
	Curves    []clipCurve `yaml:"curves"`
}

// EncodeClip serialises clip to YAML, curves in property order.
func EncodeClip(clip *animation.Clip) ([]byte, error) {
	doc := clipDocument{
		ID:        clip.ID.String(),
		Name:      clip.Name,
		FrameRate: clip.FrameRate,
		WrapMode:  clip.WrapMode.String(),
		Length:    clip.Length(),
	}
	for _, p := range clip.Properties() {
		cv, _ := clip.Curve(p)
		doc.Curves = append(doc.Curves, clipCurve{Property: p, Keys: cv.Keys()})
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't encode clip %q", clip.Name)
	}
	return data, nil
}

// DecodeClip parses a clip written by EncodeClip. The stored length is
// informational, the clip recomputes it from its keys.
func DecodeClip(data []byte) (*animation.Clip, error) {
	var doc clipDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "Failed to parse yaml")
	}

	clip := animation.NewClip(doc.Name)
	if doc.ID != "" {
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse clip id %q", doc.ID)
		}
		clip.ID = id
	}
	if doc.FrameRate > 0 {
		clip.FrameRate = doc.FrameRate
	}
	mode, err := animation.ParseWrapMode(doc.WrapMode)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse clip wrap mode")
	}
	clip.WrapMode = mode
	for _, c := range doc.Curves {
		clip.SetCurve(c.Property, animation.NewCurve(c.Keys...))
	}
	return clip, nil
}

func SaveClip(path string, clip *animation.Clip) error {
	data, err := EncodeClip(clip)
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "Can't write clip %q", path)
}

func LoadClip(path string) (*animation.Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read clip %q", path)
	}
	clip, err := DecodeClip(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load clip %q", path)
	}
	return clip, nil
}
