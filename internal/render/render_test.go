package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"regionpack/internal/core"
	"regionpack/pkg/region"
)

type stillScene struct{ layers []core.Layer }

func (s *stillScene) Name() string         { return "still" }
func (s *stillScene) Size() core.Size      { return core.Size{W: 8, H: 4} }
func (s *stillScene) Reset(int64)          {}
func (s *stillScene) Step()                {}
func (s *stillScene) Layers() []core.Layer { return s.layers }

func newStill() *stillScene {
	return &stillScene{layers: []core.Layer{
		{Name: "left", Region: region.Rectangle(0, 0, 4, 4)},
		{Name: "dot", Region: region.Point(1, 1)},
	}}
}

func TestFillPaletteRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, Palette{{R: 1, A: 255}, {G: 2, A: 255}})
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v", buf)
	}
	fillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if !bytes.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette left %v", buf)
	}
}

func TestLayerPaletteCycles(t *testing.T) {
	p := LayerPalette(len(layerColors) + 1)
	if p[0] != Background || p[1] != p[len(layerColors)+1] {
		t.Fatal("palette does not cycle")
	}
}

func TestSnapshot(t *testing.T) {
	img := Snapshot(newStill(), 3, "")
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 12 {
		t.Fatalf("bounds = %v", b)
	}
	p := LayerPalette(2)
	if got := img.RGBAAt(4, 4); got != p[2] {
		t.Fatalf("dot pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != p[1] {
		t.Fatalf("left pixel = %v", got)
	}
	if got := img.RGBAAt(23, 11); got != Background {
		t.Fatalf("background pixel = %v", got)
	}
}

func TestSnapshotCaption(t *testing.T) {
	img := Snapshot(newStill(), 4, "hi")
	if img.Bounds().Dy() != 16+captionHeight {
		t.Fatalf("height = %d", img.Bounds().Dy())
	}
	inked := false
	for y := 16; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) != Background {
				inked = true
			}
		}
	}
	if !inked {
		t.Fatal("caption drew nothing")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, newStill(), 2, "still"); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got != LayerPalette(2)[1] {
		t.Fatalf("decoded pixel = %v", got)
	}
}
