package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// maxTextureDimension caps the width/height of a loaded texture; larger
// images are downsampled with imaging.Resize so scanned/high-res textures
// stay tractable (spec.md §6 treats texture loading internals as out of
// scope for the core engine, but a complete loader still needs this).
const maxTextureDimension = 2048

// init registers the extra x/image decoders so image.Decode recognizes
// BMP, TIFF and WebP in addition to the PNG/JPEG the standard library
// registers via blank import.
func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("webp", "RIFF", webp.Decode, webp.DecodeConfig)
}

// LoadTexture decodes a PNG/JPEG/BMP/TIFF/WebP image file into a
// texture.Image, downsampling it first if it exceeds maxTextureDimension
// in either dimension. Per spec.md §6, a non-existent path is a fatal
// (returned) error.
func LoadTexture(path string) (*texture.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open texture %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxTextureDimension || bounds.Dy() > maxTextureDimension {
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, maxTextureDimension, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxTextureDimension, imaging.Lanczos)
		}
		bounds = img.Bounds()
	}

	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0)
		}
	}

	return texture.NewImage(width, height, pixels), nil
}
