package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"colorviz/internal/model"
)

type Screen string

const (
	ScreenMenu     Screen = "menu"
	ScreenAnalysis Screen = "analysis"
)

type MenuAction string

const (
	ActionUp     MenuAction = "up"
	ActionDown   MenuAction = "down"
	ActionSelect MenuAction = "select"
	ActionBack   MenuAction = "back"
)

var ErrUnknownAction = errors.New("unknown menu action")

// Joystick Y thresholds on the 12-bit ADC.
const (
	axisUpBelow   = 1000
	axisDownAbove = 3000
)

type MenuState struct {
	Screen  Screen        `json:"screen"`
	Cursor  int           `json:"cursor"`
	Variant model.Variant `json:"mode"`
	Items   []string      `json:"items"`
}

// Menu is the variant selector: a cyclic cursor over model.Variants() and
// the analysis screen entered by selecting one.
type Menu struct {
	mu      sync.Mutex
	items   []model.Variant
	screen  Screen
	cursor  int
	variant model.Variant
}

func NewMenu() *Menu {
	return &Menu{items: model.Variants(), screen: ScreenMenu, variant: model.VariantNormal}
}

func ParseMenuAction(s string) (MenuAction, error) {
	a := MenuAction(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionUp, ActionDown, ActionSelect, ActionBack:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (m *Menu) Apply(a MenuAction) (MenuState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch a {
	case ActionUp:
		if m.screen == ScreenMenu {
			m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)
		}
	case ActionDown:
		if m.screen == ScreenMenu {
			m.cursor = (m.cursor + 1) % len(m.items)
		}
	case ActionSelect:
		if m.screen == ScreenMenu {
			m.screen = ScreenAnalysis
			m.variant = m.items[m.cursor]
		}
	case ActionBack:
		m.screen = ScreenMenu
	default:
		return m.snapshotLocked(), fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
	return m.snapshotLocked(), nil
}

// Enter jumps straight to the analysis screen for v.
func (m *Menu) Enter(v model.Variant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item == v {
			m.cursor = i
			m.variant = v
			m.screen = ScreenAnalysis
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not selectable", model.ErrUnknownVariant, v)
}

func (m *Menu) Snapshot() MenuState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Menu) snapshotLocked() MenuState {
	items := make([]string, len(m.items))
	for i, v := range m.items {
		items[i] = v.String()
	}
	st := MenuState{Screen: m.screen, Cursor: m.cursor, Variant: model.VariantNormal, Items: items}
	if m.screen == ScreenAnalysis {
		st.Variant = m.variant
	}
	return st
}

// AxisAction maps a joystick Y reading to a cursor move.
func AxisAction(adc uint16) (MenuAction, bool) {
	switch {
	case adc < axisUpBelow:
		return ActionUp, true
	case adc > axisDownAbove:
		return ActionDown, true
	}
	return "", false
}
