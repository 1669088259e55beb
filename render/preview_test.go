package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/quadric/torus/render"
	"gonum.org/v1/plot/cmpimg"
)

func TestRenderImageDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("software rasterization is slow")
	}
	m := twistedBand(t)
	view := render.DefaultView()
	var b1, b2 bytes.Buffer
	if err := png.Encode(&b1, render.RenderImage(m, view)); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&b2, render.RenderImage(m, view)); err != nil {
		t.Fatal(err)
	}
	ok, err := cmpimg.Equal("png", b1.Bytes(), b2.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("two renders of the same mesh differ")
	}
}

func TestSavePNG(t *testing.T) {
	if testing.Short() {
		t.Skip("software rasterization is slow")
	}
	m := twistedBand(t)
	path := filepath.Join(t.TempDir(), "band.png")
	if err := render.SavePNG(path, m, render.DefaultView()); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG written")
	}
}
