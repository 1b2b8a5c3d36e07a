// Package scene loads scene descriptions from YAML or JSON files and turns
// them into encoder input.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/vox/pkg/vox"
)

// DefaultPalette is used when a file names neither a preset nor colors.
const DefaultPalette = "gray"

var ErrInvalidScene = errors.New("scene: invalid scene")

// File is the on-disk scene description.
//
//	size: [16, 16, 16]
//	voxels:
//	  - [0, 0, 0, 1]    # x, y, z, color index
//	palette: gray       # or colors: [[r, g, b, a], ...] with 256 entries
//	output:
//	  dir: out
//	  prefix: cube
type File struct {
	Size    [3]uint32   `yaml:"size" json:"size"`
	Voxels  [][4]uint16 `yaml:"voxels" json:"voxels"`
	Palette string      `yaml:"palette,omitempty" json:"palette,omitempty"`
	Colors  [][4]uint16 `yaml:"colors,omitempty" json:"colors,omitempty"`
	Output  Output      `yaml:"output,omitempty" json:"output,omitempty"`
}

// Output tells the persistence layer where to put the file.
type Output struct {
	Dir    string `yaml:"dir,omitempty" json:"dir,omitempty"`
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
}

// Format selects a decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("scene: unsupported file extension %q", filepath.Ext(path))
	}
}

// Load reads and decodes a scene file.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode reads a scene in the given format. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	default:
		return nil, fmt.Errorf("scene: unsupported format %q", format)
	}
	return &f, nil
}

// Scene validates f and converts it to encoder input.
//
// Grid bounds and voxel coordinates are checked here. Color indices are left
// to the encoder, which owns that rule.
func (f *File) Scene() (vox.Scene, error) {
	size := vox.Size{X: f.Size[0], Y: f.Size[1], Z: f.Size[2]}
	if err := size.Validate(); err != nil {
		return vox.Scene{}, err
	}

	voxels := make([]vox.Voxel, len(f.Voxels))
	for i, v := range f.Voxels {
		if v[0] > 255 || v[1] > 255 || v[2] > 255 {
			return vox.Scene{}, fmt.Errorf("%w: voxel %d coordinates %v do not fit a byte", ErrInvalidScene, i, v[:3])
		}
		if uint32(v[0]) >= size.X || uint32(v[1]) >= size.Y || uint32(v[2]) >= size.Z {
			return vox.Scene{}, fmt.Errorf("%w: voxel %d at %v lies outside %dx%dx%d", ErrInvalidScene, i, v[:3], size.X, size.Y, size.Z)
		}
		voxels[i] = vox.Voxel{X: uint8(v[0]), Y: uint8(v[1]), Z: uint8(v[2]), ColorIndex: v[3]}
	}

	palette, err := f.palette()
	if err != nil {
		return vox.Scene{}, err
	}
	return vox.Scene{Size: size, Voxels: voxels, Palette: palette}, nil
}

func (f *File) palette() ([]vox.Color, error) {
	name := strings.ToLower(strings.TrimSpace(f.Palette))
	if name != "" && len(f.Colors) > 0 {
		return nil, fmt.Errorf("%w: palette and colors are mutually exclusive", ErrInvalidScene)
	}
	if len(f.Colors) > 0 {
		out := make([]vox.Color, len(f.Colors))
		for i, c := range f.Colors {
			if c[0] > 255 || c[1] > 255 || c[2] > 255 || c[3] > 255 {
				return nil, fmt.Errorf("%w: color %d component out of range: %v", ErrInvalidScene, i, c)
			}
			out[i] = vox.Color{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: uint8(c[3])}
		}
		return out, nil
	}
	if name == "" {
		name = DefaultPalette
	}
	p, ok := vox.Preset(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown palette %q", ErrInvalidScene, f.Palette)
	}
	return p, nil
}
