package gaze

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// --- Constants ---

const (
	assetPrefix = "gaze_"
	assetExt    = ".webp"
)

// DefaultGrid is the lattice the stock face asset sets are rendered on:
// 11 positions per axis from -15 to 15 in steps of 3, 256px images.
var DefaultGrid = Grid{Min: -15, Max: 15, Step: 3, Size: 256}

// Grid quantizes normalized offsets onto a symmetric integer lattice and names
// the pre-rendered asset for each lattice point. Grid is a value type with no
// internal state; every method is a pure function of its fields.
type Grid struct {
	Min, Max int // inclusive lattice bounds, both multiples of Step
	Step     int // lattice spacing
	Size     int // resolution tag embedded in asset names
}

// NewGrid returns a validated Grid.
func NewGrid(min, max, step, size int) (Grid, error) {
	g := Grid{Min: min, Max: max, Step: step, Size: size}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate reports whether the grid describes a usable lattice.
func (g Grid) Validate() error {
	switch {
	case g.Step <= 0:
		return fmt.Errorf("grid: step must be positive, got %d", g.Step)
	case g.Min >= g.Max:
		return fmt.Errorf("grid: min %d must be below max %d", g.Min, g.Max)
	case g.Min%g.Step != 0 || g.Max%g.Step != 0:
		return fmt.Errorf("grid: bounds [%d, %d] are not multiples of step %d", g.Min, g.Max, g.Step)
	case g.Size <= 0:
		return fmt.Errorf("grid: size must be positive, got %d", g.Size)
	}
	return nil
}

// Quantize maps a normalized value in [-1, 1] onto the lattice. Inputs outside
// the range are clamped first, NaN is treated as 0. The remapped value is
// snapped to the nearest multiple of Step with ties rounded away from zero
// (math.Round), then clamped into [Min, Max].
func (g Grid) Quantize(v float64) int {
	step := g.Step
	if step <= 0 {
		step = 1
	}
	v = clamp(v, -1, 1)
	raw := float64(g.Min) + (v+1)*float64(g.Max-g.Min)/2
	snapped := int(math.Round(raw/float64(step))) * step
	return clampInt(snapped, g.Min, g.Max)
}

// CellFor quantizes both axes of o independently.
func (g Grid) CellFor(o Offset) Cell {
	return Cell{X: g.Quantize(o.X), Y: g.Quantize(o.Y)}
}

// Center returns the cell a centered pointer maps to.
func (g Grid) Center() Cell {
	return g.CellFor(Offset{})
}

// Lattice returns every lattice position from Min to Max in ascending order.
func (g Grid) Lattice() []int {
	if g.Validate() != nil {
		return nil
	}
	out := make([]int, 0, (g.Max-g.Min)/g.Step+1)
	for v := g.Min; v <= g.Max; v += g.Step {
		out = append(out, v)
	}
	return out
}

// Cells returns every lattice cell in row-major order. Rows run from the top
// (Y = Max) down, columns from left (X = Min) to right.
func (g Grid) Cells() []Cell {
	axis := g.Lattice()
	out := make([]Cell, 0, len(axis)*len(axis))
	for i := len(axis) - 1; i >= 0; i-- {
		for _, x := range axis {
			out = append(out, Cell{X: x, Y: axis[i]})
		}
	}
	return out
}

// Manifest lists the asset path for every cell, prefixed with basePath.
// A complete asset set contains exactly these files.
func (g Grid) Manifest(basePath string) []string {
	cells := g.Cells()
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = basePath + g.AssetName(c)
	}
	return out
}

// --- Asset naming ---

var coordReplacer = strings.NewReplacer("-", "m", ".", "p")

// SanitizeCoord makes a formatted coordinate filesystem safe: the minus sign
// becomes "m" and a decimal point becomes "p".
func SanitizeCoord(s string) string {
	return coordReplacer.Replace(s)
}

// AssetName returns the canonical file name for c:
//
//	gaze_px{X}_py{Y}_{Size}.webp
//
// with negative coordinates written as "m" followed by the magnitude.
func (g Grid) AssetName(c Cell) string {
	var b strings.Builder
	b.Grow(32)
	b.WriteString(assetPrefix)
	b.WriteString("px")
	b.WriteString(SanitizeCoord(strconv.Itoa(c.X)))
	b.WriteString("_py")
	b.WriteString(SanitizeCoord(strconv.Itoa(c.Y)))
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(g.Size))
	b.WriteString(assetExt)
	return b.String()
}

// ParseAssetName is the inverse of AssetName. It returns the encoded cell and
// resolution tag, or an error if name is not in canonical form.
func ParseAssetName(name string) (Cell, int, error) {
	rest, ok := strings.CutPrefix(name, assetPrefix+"px")
	if !ok {
		return Cell{}, 0, fmt.Errorf("parse asset name %q: missing %q prefix", name, assetPrefix+"px")
	}
	rest, ok = strings.CutSuffix(rest, assetExt)
	if !ok {
		return Cell{}, 0, fmt.Errorf("parse asset name %q: missing %q extension", name, assetExt)
	}
	parts := strings.Split(rest, "_")
	if len(parts) != 3 || !strings.HasPrefix(parts[1], "py") {
		return Cell{}, 0, fmt.Errorf("parse asset name %q: want px{X}_py{Y}_{SIZE}", name)
	}
	x, err := parseCoord(parts[0])
	if err != nil {
		return Cell{}, 0, fmt.Errorf("parse asset name %q: x: %w", name, err)
	}
	y, err := parseCoord(parts[1][2:])
	if err != nil {
		return Cell{}, 0, fmt.Errorf("parse asset name %q: y: %w", name, err)
	}
	size, err := strconv.Atoi(parts[2])
	if err != nil || size <= 0 || strconv.Itoa(size) != parts[2] {
		return Cell{}, 0, fmt.Errorf("parse asset name %q: invalid size %q", name, parts[2])
	}
	return Cell{X: x, Y: y}, size, nil
}

// parseCoord decodes one sanitized integer coordinate, rejecting anything
// that would not re-encode to the same token.
func parseCoord(tok string) (int, error) {
	digits := tok
	neg := false
	if strings.HasPrefix(tok, "m") {
		neg = true
		digits = tok[1:]
	}
	if digits == "" {
		return 0, fmt.Errorf("empty coordinate %q", tok)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid coordinate %q", tok)
		}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q: %w", tok, err)
	}
	if neg {
		v = -v
	}
	if SanitizeCoord(strconv.Itoa(v)) != tok {
		return 0, fmt.Errorf("non-canonical coordinate %q", tok)
	}
	return v, nil
}
