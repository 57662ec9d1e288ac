// Package styles provides the lipgloss styles used for messages and the
// colour-aware writers they are rendered through.
//
// Styles always render full colour; the writer returned by [NewWriter]
// downsamples (or strips) the escape sequences for the actual terminal, so
// piped output and NO_COLOR environments get plain text.
package styles

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// Colour modes accepted by --color and the color config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Theme defines the color palette for messages
type Theme struct {
	Success color.Color // matched branch
	Error   color.Color // "Error:" prefix
	Accent  color.Color // branch names inside messages
	Muted   color.Color // traced commands
}

var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Accent:  lipgloss.Color("212"), // pink/magenta
		Muted:   lipgloss.Color("240"), // dark gray
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Success: lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Error:   lipgloss.Color("#bf616a"), // nord11 (aurora red)
		Accent:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Muted:   lipgloss.Color("#4c566a"), // nord3 (polar night)
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Accent:  lipgloss.Color("#ff79c6"),
		Muted:   lipgloss.Color("#6272a4"),
	}

	// NoneTheme renders without any colors
	NoneTheme = Theme{
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
	}
)

var themes = map[string]Theme{
	"default": DefaultTheme,
	"nord":    NordTheme,
	"dracula": DraculaTheme,
	"none":    NoneTheme,
}

// Message styles, updated by [Init].
var (
	SuccessStyle = lipgloss.NewStyle()
	ErrorStyle   = lipgloss.NewStyle()
	AccentStyle  = lipgloss.NewStyle()
	MutedStyle   = lipgloss.NewStyle()
)

func init() {
	applyTheme(DefaultTheme)
}

// ThemeNames returns the names accepted by [Init], sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidTheme reports whether name selects a theme. Names are case-insensitive.
func ValidTheme(name string) bool {
	_, ok := themes[strings.ToLower(name)]
	return ok
}

// Init selects a theme by name. An empty name keeps the default theme.
func Init(name string) error {
	if name == "" {
		applyTheme(DefaultTheme)
		return nil
	}
	theme, ok := themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	applyTheme(theme)
	return nil
}

func applyTheme(t Theme) {
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
}

// ValidColorMode reports whether mode is one of auto, always or never.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Profile picks the color profile for w under the given mode.
// In auto mode only terminals get colour; NO_COLOR and friends are honoured
// through colorprofile detection.
func Profile(w io.Writer, mode string, environ []string) colorprofile.Profile {
	switch mode {
	case ColorAlways:
		return colorprofile.ANSI256
	case ColorNever:
		return colorprofile.NoTTY
	}
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return colorprofile.NoTTY
	}
	return colorprofile.Detect(f, environ)
}

// NewWriter wraps w so styled text is downsampled to the profile chosen by mode.
func NewWriter(w io.Writer, mode string) io.Writer {
	environ := os.Environ()
	cw := colorprofile.NewWriter(w, environ)
	cw.Profile = Profile(w, mode, environ)
	return cw
}
