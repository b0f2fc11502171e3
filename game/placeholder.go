package game

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
)

// WritePlaceholderAssets generates simple sprites and synthesized sounds
// under root so the game is playable without bundled art.
func WritePlaceholderAssets(root string) error {
	imgDir := filepath.Join(root, "images")
	sndDir := filepath.Join(root, "sounds")
	for _, dir := range []string{imgDir, sndDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create asset dir %s: %w", dir, err)
		}
	}

	images := []struct {
		name string
		img  image.Image
	}{
		{"ant-0.png", antSprite(0)},
		{"ant-1.png", antSprite(1)},
		{"ant-2.png", antSprite(2)},
		{"cashew.png", blobSprite(30, color.RGBA{R: 0xd9, G: 0xb3, B: 0x82, A: 0xff})},
		{"kiwi.png", blobSprite(30, color.RGBA{R: 0x6b, G: 0x8e, B: 0x23, A: 0xff})},
		{"orange.png", blobSprite(30, color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff})},
		{"poison.png", poisonSprite(40)},
		{"pavement.png", pavementSprite(800, 600)},
	}
	for _, it := range images {
		if err := writePNG(filepath.Join(imgDir, it.name), it.img); err != nil {
			return err
		}
	}

	sounds := []struct {
		name string
		pcm  []int16
	}{
		{"eat.wav", toneSamples(880, 0.15, 0.35)},
		{"die.wav", sweepSamples(400, 80, 1.2, 0.5)},
		{"gameover.wav", sweepSamples(220, 40, 2.0, 0.5)},
		{"soundtrack.wav", melodySamples()},
	}
	for _, it := range sounds {
		if err := writeWAV(filepath.Join(sndDir, it.name), it.pcm); err != nil {
			return err
		}
	}
	return nil
}

// antSprite draws the ant facing +x so the renderer can rotate it by the
// heading directly. frame offsets the leg phase for the walk cycle.
func antSprite(frame int) image.Image {
	const s = 48
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	body := color.RGBA{R: 0x3a, G: 0x24, B: 0x10, A: 0xff}
	legs := color.RGBA{R: 0x1f, G: 0x12, B: 0x06, A: 0xff}

	// abdomen, thorax, head along the x axis
	fillCircle(img, 14, s/2, 7, body)
	fillCircle(img, 24, s/2, 5, body)
	fillCircle(img, 33, s/2, 6, body)
	fillCircle(img, 41, s/2, 4, body)

	for i := 0; i < 3; i++ {
		spread := 10.0
		if (i+frame)%2 == 0 {
			spread = 13
		}
		x := 14 + float64(i)*9
		fillCircle(img, x, s/2-spread, 1.5, legs)
		fillCircle(img, x, s/2+spread, 1.5, legs)
	}
	return img
}

// blobSprite is a filled disc with a dark outline, standing in for a piece
// of food.
func blobSprite(s int, clr color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	c := float64(s) / 2
	r := c - 2
	fillCircle(img, c, c, r, clr)
	ringCircle(img, c, c, r, color.RGBA{A: 0xff})
	return img
}

func poisonSprite(s int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	c := float64(s) / 2
	fillCircle(img, c, c, c-2, color.RGBA{R: 0x4b, G: 0x0b, B: 0x52, A: 0xff})

	// white cross warning mark
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for i := -s / 4; i <= s/4; i++ {
		img.SetRGBA(s/2+i, s/2+i, white)
		img.SetRGBA(s/2+i, s/2-i, white)
	}
	return img
}

// pavementSprite is a speckled grey backdrop. The texture is seeded so
// regenerating assets produces the same board.
func pavementSprite(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rng := rand.New(rand.NewSource(1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0xb0 + rng.Intn(24))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v - 8, A: 0xff})
		}
	}
	return img
}

func fillCircle(img *image.RGBA, cx, cy, r float64, clr color.RGBA) {
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, clr)
			}
		}
	}
}

func ringCircle(img *image.RGBA, cx, cy, r float64, clr color.RGBA) {
	inner := (r - 1.5) * (r - 1.5)
	outer := r * r
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := dx*dx + dy*dy
			if d >= inner && d <= outer && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, clr)
			}
		}
	}
}

// toneSamples synthesizes a decaying sine blip.
func toneSamples(freq, durSec, gain float64) []int16 {
	n := int(durSec * sampleRate)
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / sampleRate
		env := math.Exp(-4 * t / durSec)
		out[i] = int16(math.Sin(2*math.Pi*freq*t) * gain * env * math.MaxInt16)
	}
	return out
}

// sweepSamples glides from one frequency down to another with a linear
// fade-out.
func sweepSamples(from, to, durSec, gain float64) []int16 {
	n := int(durSec * sampleRate)
	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		f := from + (to-from)*t
		phase += 2 * math.Pi * f / sampleRate
		out[i] = int16(math.Sin(phase) * gain * (1 - t) * math.MaxInt16)
	}
	return out
}

// melodySamples renders an eight-note motif; the mixer loops it as the
// soundtrack.
func melodySamples() []int16 {
	notes := []float64{261.63, 329.63, 392.00, 523.25, 493.88, 440.00, 392.00, 329.63}
	const noteSec = 0.4
	n := int(noteSec * sampleRate)
	out := make([]int16, 0, n*len(notes))
	for _, f := range notes {
		for i := 0; i < n; i++ {
			t := float64(i) / sampleRate
			env := math.Exp(-1.5 * t)
			v := math.Sin(2*math.Pi*f*t)*0.25 + math.Sin(2*math.Pi*f*1.25*t)*0.12
			out = append(out, int16(v*env*math.MaxInt16))
		}
	}
	return out
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write image %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode image %s: %w", path, err)
	}
	return nil
}

// writeWAV writes 16-bit stereo PCM under a standard 44-byte RIFF header,
// duplicating the mono samples onto both channels.
func writeWAV(path string, pcm []int16) error {
	const (
		channels      = 2
		bitsPerSample = 16
	)
	out := make([]byte, 44, 44+len(pcm)*channels*2)
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+len(pcm)*channels*2))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:], channels)
	binary.LittleEndian.PutUint32(out[24:], sampleRate)
	binary.LittleEndian.PutUint32(out[28:], sampleRate*channels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(out[32:], channels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(out[34:], bitsPerSample)
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(len(pcm)*channels*2))

	var sample [2]byte
	for _, s := range pcm {
		binary.LittleEndian.PutUint16(sample[:], uint16(s))
		out = append(out, sample[0], sample[1], sample[0], sample[1])
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write sound %s: %w", path, err)
	}
	return nil
}
