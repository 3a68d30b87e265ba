package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Commands that can be rebound in the keymap.
const (
	CmdQuit = "quit"
	CmdSave = "save"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Editor holds editing and layout settings.
type Editor struct {
	// TabWidth is the distance between tab stops when rendering.
	TabWidth int `yaml:"tab_width"`
	// ExpandTabs makes the Tab key insert spaces instead of a tab rune.
	ExpandTabs bool `yaml:"expand_tabs"`
	// MinRows is the window height assumed when the terminal cannot report one.
	MinRows int `yaml:"min_rows"`
}

// Config holds user configuration values.
type Config struct {
	Keymap    map[string]Keybinding `yaml:"keymap"`
	Editor    Editor                `yaml:"editor"`
	ThemeName string                `yaml:"theme"`
	Theme     Theme                 `yaml:"-"`
}

// Default returns a Config with default key mappings and settings.
func Default() *Config {
	return &Config{
		Keymap:    DefaultKeymap(),
		Editor:    DefaultEditor(),
		ThemeName: "default",
		Theme:     DefaultTheme(),
	}
}

// DefaultEditor returns the built-in editor settings.
func DefaultEditor() Editor {
	return Editor{TabWidth: 8, ExpandTabs: false, MinRows: 24}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		CmdQuit: mustParse("Ctrl+Q"),
		CmdSave: mustParse("Ctrl+S"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over cfg. Keys absent from data keep their
// current values.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	for cmd := range cfg.Keymap {
		if cmd != CmdQuit && cmd != CmdSave {
			return errors.New("unknown keymap command: " + cmd)
		}
	}
	if cfg.Editor.TabWidth <= 0 {
		return fmt.Errorf("editor.tab_width must be positive, got %d", cfg.Editor.TabWidth)
	}
	if cfg.Editor.MinRows < 2 {
		cfg.Editor.MinRows = 2
	}
	theme, ok := BuiltinThemes[strings.ToLower(cfg.ThemeName)]
	if !ok {
		return errors.New("unknown theme: " + cfg.ThemeName)
	}
	cfg.Theme = theme
	return nil
}

// DefaultPath returns ~/.ste/config.yaml, or "" when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ste", "config.yaml")
}

// UnmarshalYAML decodes a binding written as "Ctrl+<letter>".
func (k *Keybinding) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kb, err := ParseKeybinding(s)
	if err != nil {
		return err
	}
	*k = kb
	return nil
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Currently only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(strings.TrimSpace(parts[0]), "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(strings.TrimSpace(parts[1])))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, _ := ParseKeybinding(s)
	return kb
}

// String renders the binding in the form ParseKeybinding accepts.
func (k Keybinding) String() string {
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl {
		return "Ctrl+" + strings.ToUpper(string(k.Rune))
	}
	return tcell.KeyNames[k.Key]
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl {
		if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
			return true
		}
	}
	return false
}
