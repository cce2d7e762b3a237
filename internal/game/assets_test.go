package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestOpenAssetsLoadsKnownImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "game_bg.png"), 32, 16)

	a := OpenAssets(dir)
	defer a.Close()

	img, ver, ok := a.Image("game_bg.png")
	if !ok {
		t.Fatal("game_bg.png not loaded")
	}
	if ver == 0 {
		t.Fatal("version not bumped on load")
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("bounds = %v", b)
	}

	if _, _, ok := a.Image("main_bg.png"); ok {
		t.Fatal("absent asset reported present")
	}
}

func TestOpenAssetsMissingDir(t *testing.T) {
	a := OpenAssets(filepath.Join(t.TempDir(), "nope"))
	defer a.Close()
	if _, _, ok := a.Image("game_bg.png"); ok {
		t.Fatal("image from missing dir")
	}
}

func TestAssetsIgnoresCorruptImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "end_bg.png"), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := OpenAssets(dir)
	defer a.Close()
	if _, _, ok := a.Image("end_bg.png"); ok {
		t.Fatal("corrupt image loaded")
	}
}

func TestFallbackStartButton(t *testing.T) {
	img := FallbackStartButton(300, 90)
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 90 {
		t.Fatalf("bounds = %v", b)
	}
	// Centre pixel sits inside the filled rounded rect.
	c := color.NRGBAModel.Convert(img.At(150, 45)).(color.NRGBA)
	if c.A == 0 {
		t.Fatal("centre of button transparent")
	}
}

func TestFallbackStartButtonTinySize(t *testing.T) {
	img := FallbackStartButton(1, 1)
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("degenerate bounds %v", b)
	}
}
