package level

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// LoadTexturePack reads the images of a glTF or GLB file and returns them as a
// texture table in image index order. Image names become texture names.
func LoadTexturePack(path string) ([]Texture, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture pack %s: %w", path, err)
	}
	if len(doc.Images) == 0 {
		return nil, fmt.Errorf("load texture pack %s: %w", path, ErrNoTextureFiles)
	}

	textures := make([]Texture, 0, len(doc.Images))
	for i, img := range doc.Images {
		data, err := imageBytes(doc, img, filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("texture pack %s image %d: %w", path, i, err)
		}

		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("texture pack %s image %d: decode: %w", path, i, err)
		}

		name := img.Name
		if name == "" {
			name = fmt.Sprintf("T%d", i)
		}
		tex := TextureFromImage(name, decoded)
		logger.Printf("pack texture %d: %s (%dx%d)", i, tex.Name, tex.Width, tex.Height)
		textures = append(textures, tex)
	}
	return textures, nil
}

// imageBytes returns the encoded bytes of an image, either from a buffer view
// (GLB) or from an external file next to the document.
func imageBytes(doc *gltf.Document, img *gltf.Image, dir string) ([]byte, error) {
	if img.BufferView != nil {
		if *img.BufferView < 0 || *img.BufferView >= len(doc.BufferViews) {
			return nil, fmt.Errorf("buffer view %d out of range", *img.BufferView)
		}
		bv := doc.BufferViews[*img.BufferView]
		if bv.Buffer < 0 || bv.Buffer >= len(doc.Buffers) {
			return nil, fmt.Errorf("buffer %d out of range", bv.Buffer)
		}
		buf := doc.Buffers[bv.Buffer]
		start, end := bv.ByteOffset, bv.ByteOffset+bv.ByteLength
		if end > len(buf.Data) {
			return nil, fmt.Errorf("buffer view [%d,%d) exceeds %d bytes", start, end, len(buf.Data))
		}
		return buf.Data[start:end], nil
	}

	if img.URI == "" {
		return nil, fmt.Errorf("image has neither buffer view nor uri")
	}
	if img.IsEmbeddedResource() {
		return img.MarshalData()
	}
	return os.ReadFile(filepath.Join(dir, img.URI))
}
