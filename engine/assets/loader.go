package assets

// Loader reads one kind of asset from disk.
type Loader interface {
	Load(path string) (interface{}, error)
}

type SamplesLoader struct{}

func (SamplesLoader) Load(path string) (interface{}, error) {
	sf, err := LoadSamples(path)
	if err != nil {
		return nil, err
	}
	return sf, nil
}

type ClipLoader struct{}

func (ClipLoader) Load(path string) (interface{}, error) {
	clip, err := LoadClip(path)
	if err != nil {
		return nil, err
	}
	return clip, nil
}
