package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/rtrace/go-ray-forest/pkg/material"
)

// LoadTexture decodes a PNG or JPEG file into a texture color
// function usable as a TexturePhong channel.
func LoadTexture(filename string) (material.ColorFunc, error) {
	img, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return material.ImageTexture(img), nil
}

// LoadImage opens and decodes a PNG or JPEG image file. The format
// is detected from the file header.
func LoadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
