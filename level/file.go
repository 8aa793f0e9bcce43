package level

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/elf-bizniz/core"
)

// filePlacement is one placement entry in a level file
// Count > 1 repeats the placement Count times, offset by StepX/StepY each time
type filePlacement struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	W     float64 `toml:"w"`
	H     float64 `toml:"h"`
	Ref   string  `toml:"ref"`
	Count int     `toml:"count,omitempty"`
	StepX float64 `toml:"step_x,omitempty"`
	StepY float64 `toml:"step_y,omitempty"`
}

type fileLevel struct {
	Name       string                     `toml:"name"`
	Background string                     `toml:"background"`
	Layers     map[string][]filePlacement `toml:"layers"`
}

// FileSource is a level decoded from a TOML file
//
//	name = "meadow"
//	background = "cornflowerblue"
//
//	[[layers.platforms]]
//	x = 0
//	y = 32
//	w = 128
//	h = 128
//	ref = "grassMid"
//	count = 16
//	step_x = 64
type FileSource struct {
	Name   string
	color  string
	layers map[string][]core.Placement
}

// ReadFile decodes the level file at path
func ReadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	src, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return src, nil
}

// Parse decodes a level from TOML text, unknown keys and layer names are rejected
func Parse(data string) (*FileSource, error) {
	var fl fileLevel
	md, err := toml.Decode(data, &fl)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidPlacement, strings.Join(keys, ", "))
	}

	src := &FileSource{
		Name:   fl.Name,
		color:  fl.Background,
		layers: make(map[string][]core.Placement, len(fl.Layers)),
	}
	for name, entries := range fl.Layers {
		if _, ok := core.ParseCategory(name); !ok {
			return nil, fmt.Errorf("%w: unknown layer %q", ErrInvalidPlacement, name)
		}
		var placements []core.Placement
		for i, e := range entries {
			if e.Count < 0 {
				return nil, fmt.Errorf("%w: %s[%d] count %d", ErrInvalidPlacement, name, i, e.Count)
			}
			n := max(e.Count, 1)
			for k := 0; k < n; k++ {
				placements = append(placements, core.Placement{
					X:   e.X + float64(k)*e.StepX,
					Y:   e.Y + float64(k)*e.StepY,
					W:   e.W,
					H:   e.H,
					Ref: core.TileRef(e.Ref),
				})
			}
		}
		src.layers[name] = placements
	}
	return src, nil
}

func (f *FileSource) Layer(name string) ([]core.Placement, bool) {
	p, ok := f.layers[name]
	return p, ok
}

func (f *FileSource) Background() (string, bool) {
	return f.color, f.color != ""
}

// layerNames returns the layers present in the file, sorted
func (f *FileSource) layerNames() []string {
	names := make([]string, 0, len(f.layers))
	for name := range f.layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode writes any source back out as a level file, one entry per placement
func Encode(name string, src Source) (string, error) {
	fl := fileLevel{Name: name, Layers: make(map[string][]filePlacement)}
	if c, ok := src.Background(); ok {
		fl.Background = c
	}
	for cat := core.Category(0); cat < core.CategoryCount; cat++ {
		placements, ok := src.Layer(cat.Layer())
		if !ok {
			continue
		}
		entries := make([]filePlacement, len(placements))
		for i, p := range placements {
			entries[i] = filePlacement{X: p.X, Y: p.Y, W: p.W, H: p.H, Ref: string(p.Ref)}
		}
		fl.Layers[cat.Layer()] = entries
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(fl); err != nil {
		return "", fmt.Errorf("encode level: %w", err)
	}
	return sb.String(), nil
}
