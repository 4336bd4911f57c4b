package stage

import (
	"fmt"
	"image/color"
	_ "image/png" // PNG decoder for asset images
	"io"
	"io/fs"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/demoncoin"
)

// placeholderSize is the edge of the image substituted for a missing texture.
const placeholderSize = 64

// Assets holds decoded images and PCM sound data by name.
type Assets struct {
	images      map[string]*ebiten.Image
	sounds      map[string][]byte
	placeholder *ebiten.Image
}

// NewAssets returns an empty asset set.
func NewAssets() *Assets {
	return &Assets{
		images: make(map[string]*ebiten.Image),
		sounds: make(map[string][]byte),
	}
}

// LoadAssets decodes every manifest entry from fsys. A file that fails to
// load is reported to sink as an EventAssetFailed carrying an
// *demoncoin.AssetLoadError and is otherwise skipped; the game runs with a
// placeholder image or silence in its place. The returned error joins all
// failures for the caller's log.
func LoadAssets(fsys fs.FS, m demoncoin.AssetManifest, sampleRate int, sink Sink) (*Assets, error) {
	a := NewAssets()
	var failed []error
	fail := func(name, path string, err error) {
		ae := &demoncoin.AssetLoadError{Name: name, Path: path, Err: err}
		failed = append(failed, ae)
		if sink != nil {
			sink.Post(demoncoin.Event{Kind: demoncoin.EventAssetFailed, Err: ae})
		}
	}

	for _, name := range sortedKeys(m.Images) {
		path := m.Images[name]
		img, err := loadImage(fsys, path)
		if err != nil {
			fail(name, path, err)
			continue
		}
		a.images[name] = img
	}
	for _, name := range sortedKeys(m.Sounds) {
		path := m.Sounds[name]
		pcm, err := loadWAV(fsys, path, sampleRate)
		if err != nil {
			fail(name, path, err)
			continue
		}
		a.sounds[name] = pcm
	}

	if len(failed) > 0 {
		return a, fmt.Errorf("stage: %d of %d assets failed to load", len(failed), len(m.Images)+len(m.Sounds))
	}
	return a, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func loadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func loadWAV(fsys fs.FS, path string, sampleRate int) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return pcm, nil
}

// AddImage registers img under name.
func (a *Assets) AddImage(name string, img *ebiten.Image) {
	a.images[name] = img
}

// AddSound registers 16-bit stereo PCM data under name.
func (a *Assets) AddSound(name string, pcm []byte) {
	a.sounds[name] = pcm
}

// Image returns the named image, or a placeholder when it is missing.
func (a *Assets) Image(name string) *ebiten.Image {
	if img, ok := a.images[name]; ok {
		return img
	}
	if a.placeholder == nil {
		a.placeholder = ebiten.NewImage(placeholderSize, placeholderSize)
		a.placeholder.Fill(color.RGBA{0xff, 0x00, 0xff, 0xff})
	}
	return a.placeholder
}

// HasImage reports whether name was loaded.
func (a *Assets) HasImage(name string) bool {
	_, ok := a.images[name]
	return ok
}

// Sound returns the named PCM data.
func (a *Assets) Sound(name string) ([]byte, bool) {
	pcm, ok := a.sounds[name]
	return pcm, ok
}
