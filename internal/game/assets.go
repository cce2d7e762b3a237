package game

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/fsnotify/fsnotify"
)

// Known asset files. Everything is optional: images fall back to generated
// placeholders, sounds to synthesis.
var assetImageNames = []string{"main_bg.png", "game_bg.png", "end_bg.png", "start_btn.png"}

var assetSoundNames = map[string]SoundKind{
	"eat.wav":      SoundEat,
	"explode.wav":  SoundExplosion,
	"gameover.wav": SoundGameOver,
}

// Assets loads optional images and sounds from a directory and watches it
// for changes. Decoded images live here; GL texture upload happens on the
// render thread, which re-uploads when the version counter moves.
type Assets struct {
	dir string

	mu       sync.RWMutex
	images   map[string]image.Image
	versions map[string]uint64

	watcher *fsnotify.Watcher
}

// OpenAssets loads every known asset that exists under dir.
func OpenAssets(dir string) *Assets {
	a := &Assets{
		dir:      dir,
		images:   make(map[string]image.Image),
		versions: make(map[string]uint64),
	}
	for _, name := range assetImageNames {
		a.loadImage(name)
	}
	for name, kind := range assetSoundNames {
		a.loadSound(name, kind)
	}
	return a
}

func (a *Assets) loadImage(name string) {
	path := filepath.Join(a.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return // optional
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", path, err)
		return
	}
	a.mu.Lock()
	a.images[name] = img
	a.versions[name]++
	a.mu.Unlock()
}

func (a *Assets) loadSound(name string, kind SoundKind) {
	path := filepath.Join(a.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return // optional, synth fallback applies
	}
	samples, err := decodeWAV(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load sound %s: %v\n", path, err)
		return
	}
	SetSoundSamples(kind, samples)
}

// Image returns the decoded image and its reload version, or ok=false when
// the asset is absent.
func (a *Assets) Image(name string) (image.Image, uint64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	img, ok := a.images[name]
	return img, a.versions[name], ok
}

// Watch reloads known assets when they change on disk, so art can be
// iterated while the game is running.
func (a *Assets) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	if err := watcher.Add(a.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", a.dir, err)
	}
	a.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				name := filepath.Base(event.Name)
				if kind, isSound := assetSoundNames[name]; isSound {
					a.loadSound(name, kind)
					continue
				}
				for _, known := range assetImageNames {
					if name == known {
						a.loadImage(name)
						break
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "asset watch: %v\n", err)
			}
		}
	}()
	return nil
}

// Close stops the asset watcher.
func (a *Assets) Close() {
	if a.watcher != nil {
		a.watcher.Close()
	}
}

// FallbackStartButton renders the placeholder START button used when
// start_btn.png is missing: a rounded rect with a chunky label, drawn at a
// third of the size and upscaled nearest-neighbour to match the font look.
func FallbackStartButton(w, h int) image.Image {
	if w < 3 || h < 3 {
		w, h = 300, 90
	}
	dc := gg.NewContext(w/3, h/3)
	fill := Palette.ButtonFill
	dc.SetRGB255(int(fill.R), int(fill.G), int(fill.B))
	dc.DrawRoundedRectangle(0, 0, float64(w/3), float64(h/3), 6)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored("START", float64(w/3)/2, float64(h/3)/2, 0.5, 0.5)
	return imaging.Resize(dc.Image(), w, h, imaging.NearestNeighbor)
}
