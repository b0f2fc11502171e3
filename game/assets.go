package game

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const numFoodVariants = 3

var foodImageNames = [numFoodVariants]string{"cashew.png", "kiwi.png", "orange.png"}

const hudFontSize = 50

// Assets holds every sprite and the font face the game draws with. All
// files are loaded once at startup; a missing or undecodable file aborts
// initialization.
type Assets struct {
	AntFrames  [antFrameCount]*ebiten.Image
	Food       [numFoodVariants]*ebiten.Image
	Poison     *ebiten.Image
	Background *ebiten.Image
	Face       text.Face
}

// LoadAssets reads sprites from <root>/images and builds the HUD face from
// the bundled Go font.
func LoadAssets(root string, cfg Config) (*Assets, error) {
	dir := filepath.Join(root, "images")
	a := &Assets{}

	for i := range a.AntFrames {
		img, err := loadImage(filepath.Join(dir, fmt.Sprintf("ant-%d.png", i)))
		if err != nil {
			return nil, err
		}
		a.AntFrames[i] = img
	}
	for i, name := range foodImageNames {
		img, err := loadImage(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		a.Food[i] = img
	}

	poison, err := loadImage(filepath.Join(dir, "poison.png"))
	if err != nil {
		return nil, err
	}
	a.Poison = poison

	bg, err := loadImage(filepath.Join(dir, "pavement.png"))
	if err != nil {
		return nil, err
	}
	a.Background = cropCentered(bg, cfg.ScreenWidth, cfg.ScreenHeight)

	face, err := hudFace()
	if err != nil {
		return nil, err
	}
	a.Face = face

	return a, nil
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w (run `antpicnic genassets` first)", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// cropCentered crops img around its centre to w×h. Backdrops smaller than
// the board are drawn centred on an otherwise blank image.
func cropCentered(img *ebiten.Image, w, h int) *ebiten.Image {
	out := ebiten.NewImage(w, h)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(w-b.Dx())/2, float64(h-b.Dy())/2)
	out.DrawImage(img, op)
	return out
}

func hudFace() (text.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    hudFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build HUD face: %w", err)
	}
	return text.NewGoXFace(face), nil
}
