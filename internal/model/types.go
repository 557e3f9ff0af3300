package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RawSample is one sensor acquisition. Clear is read but never used by the
// pipeline.
type RawSample struct {
	Clear uint16 `json:"clear"`
	Red   uint16 `json:"red"`
	Green uint16 `json:"green"`
	Blue  uint16 `json:"blue"`
}

// Variant selects the dichromacy projection. VariantNormal is the state
// before anything was chosen in the menu and applies no filter.
type Variant int

const (
	VariantNormal Variant = iota
	VariantProtanopia
	VariantDeuteranopia
	VariantTritanopia
)

var ErrUnknownVariant = errors.New("unknown dichromacy variant")

var variantNames = map[Variant]string{
	VariantNormal:       "Normal",
	VariantProtanopia:   "Protanopia",
	VariantDeuteranopia: "Deuteranopia",
	VariantTritanopia:   "Tritanopia",
}

// Variants returns the selectable variants in menu order.
func Variants() []Variant {
	return []Variant{VariantProtanopia, VariantDeuteranopia, VariantTritanopia}
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	for v, name := range variantNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}
	return VariantNormal, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MaxColorNameLen is the byte length of the longest reference color name.
const MaxColorNameLen = 14

// ColorName is a color label bounded to MaxColorNameLen bytes.
type ColorName string

// NewColorName truncates s to MaxColorNameLen bytes without splitting a rune.
func NewColorName(s string) ColorName {
	if len(s) <= MaxColorNameLen {
		return ColorName(s)
	}
	cut := MaxColorNameLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return ColorName(s[:cut])
}

func (n ColorName) String() string {
	return string(n)
}

type AnalysisResult struct {
	Name    ColorName `json:"name"`
	Color   RGB       `json:"rgb"`
	Sensed  RGB       `json:"sensed"`
	Variant Variant   `json:"mode"`
}

type StoredResult struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Color     RGB     `json:"rgb"`
	Sensed    RGB     `json:"sensed"`
	Variant   Variant `json:"mode"`
	CreatedAt int64   `json:"created_at_unix_ms"`
}

func (r StoredResult) Result() AnalysisResult {
	return AnalysisResult{
		Name:    NewColorName(r.Name),
		Color:   r.Color,
		Sensed:  r.Sensed,
		Variant: r.Variant,
	}
}

type StoredState struct {
	Mode              Variant        `json:"mode"`
	LastResult        *StoredResult  `json:"last_result,omitempty"`
	History           []StoredResult `json:"history"`
	LastUpdatedUnixMS int64          `json:"last_updated_unix_ms"`
	CreatedAt         time.Time      `json:"created_at"`
}

type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt int64       `json:"created_at_unix_ms"`
}
