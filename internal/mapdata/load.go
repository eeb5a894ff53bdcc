package mapdata

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/retrogo/internal/fixed"
)

// FormatVersion is the level file version understood by this build.
const FormatVersion = 1

// ErrUnsupportedVersion is returned for level files of another format version.
var ErrUnsupportedVersion = errors.New("unsupported level format version")

type levelFile struct {
	Version int          `yaml:"version"`
	Name    string       `yaml:"name"`
	Sectors []sectorFile `yaml:"sectors"`
	Lines   []lineFile   `yaml:"lines"`
	Things  []Thing      `yaml:"things"`
}

type sectorFile struct {
	Rect       [4]int32 `yaml:"rect"` // left, bottom, right, top
	Floor      int32    `yaml:"floor"`
	Ceiling    int32    `yaml:"ceiling"`
	FloorSky   bool     `yaml:"floor_sky"`
	CeilingSky bool     `yaml:"ceiling_sky"`
	Liquid     bool     `yaml:"liquid"`
	HeightSec  *int     `yaml:"height_sec"`
	Friction   float64  `yaml:"friction"` // multiplier per tic, 0 = default
}

type lineFile struct {
	X1            int32 `yaml:"x1"`
	Y1            int32 `yaml:"y1"`
	X2            int32 `yaml:"x2"`
	Y2            int32 `yaml:"y2"`
	Front         int   `yaml:"front"`
	Back          *int  `yaml:"back"`
	Blocking      bool  `yaml:"blocking"`
	BlockMonsters bool  `yaml:"block_monsters"`
}

// LoadFile reads a YAML level file.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	lv, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return lv, nil
}

// Parse decodes a YAML level document.
func Parse(data []byte) (*Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if len(f.Sectors) == 0 {
		return nil, errors.New("level has no sectors")
	}

	lv := &Level{
		Name:    f.Name,
		Sectors: make([]*Sector, 0, len(f.Sectors)),
		Lines:   make([]*Line, 0, len(f.Lines)),
		Things:  f.Things,
	}

	for i, sf := range f.Sectors {
		sec := &Sector{
			ID: i,
			Bounds: Box{
				Left: fixed.Int(sf.Rect[0]), Bottom: fixed.Int(sf.Rect[1]),
				Right: fixed.Int(sf.Rect[2]), Top: fixed.Int(sf.Rect[3]),
			},
			FloorHeight:   fixed.Int(sf.Floor),
			CeilingHeight: fixed.Int(sf.Ceiling),
			FloorSky:      sf.FloorSky,
			CeilingSky:    sf.CeilingSky,
			Liquid:        sf.Liquid,
			HeightSec:     -1,
		}
		if sf.HeightSec != nil {
			sec.HeightSec = *sf.HeightSec
		}
		if sf.Friction > 0 {
			sec.Friction = fixed.Fixed(sf.Friction * float64(fixed.FracUnit))
		}
		if sec.CeilingHeight < sec.FloorHeight {
			return nil, fmt.Errorf("sector %d: ceiling below floor", i)
		}
		lv.Sectors = append(lv.Sectors, sec)
	}

	for i, lf := range f.Lines {
		front, err := lv.sector(lf.Front)
		if err != nil {
			return nil, fmt.Errorf("line %d front: %w", i, err)
		}
		var back *Sector
		if lf.Back != nil {
			if back, err = lv.sector(*lf.Back); err != nil {
				return nil, fmt.Errorf("line %d back: %w", i, err)
			}
		}
		var flags LineFlags
		if lf.Blocking {
			flags |= LineBlocking
		}
		if lf.BlockMonsters {
			flags |= LineBlockMonsters
		}
		lv.Lines = append(lv.Lines, NewLine(i,
			fixed.Int(lf.X1), fixed.Int(lf.Y1), fixed.Int(lf.X2), fixed.Int(lf.Y2),
			front, back, flags))
	}

	return lv, nil
}

func (lv *Level) sector(i int) (*Sector, error) {
	if i < 0 || i >= len(lv.Sectors) {
		return nil, fmt.Errorf("sector index %d out of range", i)
	}
	return lv.Sectors[i], nil
}
