package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// document is the on-disk level format.
type document struct {
	Name        string   `json:"name"`
	SectorCount int      `json:"sectors"`
	Sectors     []Sector `json:"sectors_data"`
	WallCount   int      `json:"walls"`
	Walls       []Wall   `json:"walls_data"`
	Spawn       *Spawn   `json:"spawn,omitempty"`
}

// textureDocument is the on-disk texture format. Data holds width*height*3
// RGB bytes written as plain JSON numbers.
type textureDocument struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name"`
	Data   []int  `json:"data"`
}

// ErrNoTextureFiles is returned when a texture directory holds no T0 entry.
var ErrNoTextureFiles = errors.New("no textures found")

// Load reads a level document and its textures, then validates the result.
// texturePath is either a directory of T<n> files or a glTF/GLB texture pack.
func Load(levelPath, texturePath string) (*Level, error) {
	lvl, err := LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	textures, err := LoadTextures(texturePath)
	if err != nil {
		return nil, err
	}
	lvl.Textures = textures

	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", levelPath, err)
	}
	logger.Printf("loaded %s: %d sectors, %d walls, %d textures", lvl.Name, len(lvl.Sectors), len(lvl.Walls), len(lvl.Textures))
	return lvl, nil
}

// LoadTextures loads a texture table from a glTF/GLB pack or a directory.
func LoadTextures(path string) ([]Texture, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return LoadTexturePack(path)
	default:
		return LoadTextureDir(path)
	}
}

// LoadLevel parses the sector and wall tables of a level document. The
// returned level has no textures and is not yet validated.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lvl, nil
}

// ParseLevel decodes a level document from JSON.
func ParseLevel(data []byte) (*Level, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.SectorCount != len(doc.Sectors) {
		return nil, fmt.Errorf("sector count %d does not match %d records", doc.SectorCount, len(doc.Sectors))
	}
	if doc.WallCount != len(doc.Walls) {
		return nil, fmt.Errorf("wall count %d does not match %d records", doc.WallCount, len(doc.Walls))
	}

	lvl := &Level{
		Name:    doc.Name,
		Sectors: doc.Sectors,
		Walls:   doc.Walls,
	}
	if doc.Spawn != nil {
		lvl.Spawn = *doc.Spawn
	}
	return lvl, nil
}

// LoadTexture loads one texture from a JSON texture document or an image file.
func LoadTexture(path string) (Texture, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return Texture{}, fmt.Errorf("read texture %s: %w", path, err)
		}
		tex, err := ParseTexture(data)
		if err != nil {
			return Texture{}, fmt.Errorf("parse texture %s: %w", path, err)
		}
		if tex.Name == "" {
			tex.Name = name
		}
		return tex, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Texture{}, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Texture{}, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return TextureFromImage(name, img), nil
}

// ParseTexture decodes a JSON texture document.
func ParseTexture(data []byte) (Texture, error) {
	var doc textureDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Texture{}, err
	}

	tex := Texture{
		Width:  doc.Width,
		Height: doc.Height,
		Name:   doc.Name,
		Pixels: make([]byte, len(doc.Data)),
	}
	for i, v := range doc.Data {
		if v < 0 || v > 255 {
			return Texture{}, fmt.Errorf("byte %d: value %d out of range", i, v)
		}
		tex.Pixels[i] = byte(v)
	}
	if err := tex.Validate(); err != nil {
		return Texture{}, err
	}
	return tex, nil
}

// textureExts lists the extensions tried for each T<n> entry, in order.
var textureExts = []string{".json", ".png", ".jpg", ".jpeg"}

// LoadTextureDir loads T0, T1, ... from dir in index order, stopping at the
// first missing index.
func LoadTextureDir(dir string) ([]Texture, error) {
	var textures []Texture
	for i := 0; ; i++ {
		path, ok := findTexture(dir, i)
		if !ok {
			break
		}
		tex, err := LoadTexture(path)
		if err != nil {
			return nil, err
		}
		logger.Printf("texture %d: %s (%dx%d)", i, tex.Name, tex.Width, tex.Height)
		textures = append(textures, tex)
	}
	if len(textures) == 0 {
		return nil, fmt.Errorf("load textures %s: %w", dir, ErrNoTextureFiles)
	}
	return textures, nil
}

func findTexture(dir string, index int) (string, bool) {
	base := filepath.Join(dir, "T"+strconv.Itoa(index))
	for _, ext := range textureExts {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext, true
		}
	}
	return "", false
}
