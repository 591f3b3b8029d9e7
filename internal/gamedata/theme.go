package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilesnake/internal/world"
)

// RoleDef defines how a board role is drawn.
type RoleDef struct {
	Role  string `json:"role"`  // Role name as returned by world.Role.String (e.g., "apple")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "*")
	Color string `json:"color"` // Hex color code (e.g., "#FF0000")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *RoleDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *RoleDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ThemeFile represents the structure of theme.json.
type ThemeFile struct {
	Background string    `json:"background"`
	Text       string    `json:"text"`
	Border     string    `json:"border"`
	Roles      []RoleDef `json:"roles"`
}

// Theme resolves board roles to terminal styles.
type Theme struct {
	roles      map[world.Role]RoleDef
	background tcell.Color
	text       tcell.Color
	border     tcell.Color
}

// NewTheme builds a theme from loaded definitions. Every role must be defined.
func NewTheme(file ThemeFile) (*Theme, error) {
	byName := map[string]world.Role{}
	for _, r := range []world.Role{world.RoleField, world.RoleBody, world.RoleHead, world.RoleApple} {
		byName[r.String()] = r
	}

	t := &Theme{roles: make(map[world.Role]RoleDef, len(file.Roles))}
	for _, def := range file.Roles {
		role, ok := byName[def.Role]
		if !ok {
			return nil, fmt.Errorf("unknown role %q in theme", def.Role)
		}
		t.roles[role] = def
	}
	if len(t.roles) != len(byName) {
		return nil, errors.New("theme must define field, body, head and apple")
	}

	var err error
	if t.background, err = ParseHexColor(file.Background); err != nil {
		return nil, fmt.Errorf("theme background: %w", err)
	}
	if t.text, err = ParseHexColor(file.Text); err != nil {
		return nil, fmt.Errorf("theme text: %w", err)
	}
	if t.border, err = ParseHexColor(file.Border); err != nil {
		return nil, fmt.Errorf("theme border: %w", err)
	}
	return t, nil
}

// LoadTheme loads the theme from the embedded theme.json.
func LoadTheme() (*Theme, error) {
	file, err := Load[ThemeFile]("theme.json")
	if err != nil {
		return nil, err
	}
	return NewTheme(file)
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// Glyph returns the display rune for a role.
func (t *Theme) Glyph(role world.Role) rune {
	def, ok := t.roles[role]
	if !ok {
		return role.Rune()
	}
	return def.GlyphRune()
}

// RoleStyle returns the style used to draw a role.
func (t *Theme) RoleStyle(role world.Role) tcell.Style {
	def, ok := t.roles[role]
	if !ok {
		return t.TextStyle()
	}
	return tcell.StyleDefault.Background(t.background).Foreground(def.TCellColor())
}

// TextStyle returns the style for status and message lines.
func (t *Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.background).Foreground(t.text).Bold(true)
}

// BorderStyle returns the style for the board frame.
func (t *Theme) BorderStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.background).Foreground(t.border)
}
