package assets

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/anima-bake/engine/hapi"
)

const SamplesExt = ".samples.yaml"

type ObjectInfo struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Visible bool   `yaml:"visible"`
}

type AssetRef struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// SampleFile is a recording of one object's transform over time. Parent,
// when present, is the world transform of the node the clip will play under,
// given in host space.
type SampleFile struct {
	Object    ObjectInfo      `yaml:"object"`
	Asset     AssetRef        `yaml:"asset"`
	FrameRate float32         `yaml:"frame_rate,omitempty"`
	Parent    *hapi.Transform `yaml:"parent,omitempty"`
	Samples   []hapi.Sample   `yaml:"samples"`
}

// documentTransform lets rotation and scale be left out of a document.
type documentTransform struct {
	Time     float32     `yaml:"time"`
	Position [3]float32  `yaml:"position"`
	Rotation *[4]float32 `yaml:"rotation"`
	Scale    *[3]float32 `yaml:"scale"`
}

func (dt documentTransform) transform() hapi.Transform {
	xform := hapi.NewTransform()
	xform.Position = dt.Position
	if dt.Rotation != nil {
		xform.RotationQuaternion = *dt.Rotation
	}
	if dt.Scale != nil {
		xform.Scale = *dt.Scale
	}
	return xform
}

type sampleDocument struct {
	Object    ObjectInfo          `yaml:"object"`
	Asset     AssetRef            `yaml:"asset"`
	FrameRate float32             `yaml:"frame_rate"`
	Parent    *documentTransform  `yaml:"parent"`
	Samples   []documentTransform `yaml:"samples"`
}

// LoadSamples reads and decodes a sample file.
func LoadSamples(path string) (*SampleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read samples %q", path)
	}
	sf, err := DecodeSamples(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load samples %q", path)
	}
	return sf, nil
}

// DecodeSamples parses a sample document. Transforms that leave rotation or
// scale out get the identity for them.
func DecodeSamples(data []byte) (*SampleFile, error) {
	var raw sampleDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "Failed to parse yaml")
	}

	sf := SampleFile{
		Object:    raw.Object,
		Asset:     raw.Asset,
		FrameRate: raw.FrameRate,
		Samples:   make([]hapi.Sample, 0, len(raw.Samples)),
	}
	if raw.Parent != nil {
		parent := raw.Parent.transform()
		sf.Parent = &parent
	}
	for _, s := range raw.Samples {
		sf.Samples = append(sf.Samples, hapi.Sample{Time: s.Time, Transform: s.transform()})
	}
	if len(sf.Samples) == 0 {
		return nil, errors.New("sample file holds no samples")
	}
	return &sf, nil
}

// SaveSamples writes sf as YAML.
func SaveSamples(path string, sf *SampleFile) error {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return errors.Wrap(err, "Can't encode samples")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "Can't write samples %q", path)
}
