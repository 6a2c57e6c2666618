package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/codearea/internal/config/loader"
	"github.com/dshills/codearea/internal/engine"
	"github.com/dshills/codearea/internal/logging"
	"github.com/dshills/codearea/internal/syntax"
)

// MaxTabWidth bounds editor.tab_width.
const MaxTabWidth = 16

// Config is the complete codearea configuration.
type Config struct {
	Editor  EditorConfig
	Logging LoggingConfig
	Syntax  SyntaxConfig
}

// EditorConfig holds engine settings.
type EditorConfig struct {
	// TabWidth is the number of columns a tab occupies.
	TabWidth int
	// MaxUndoEntries bounds the undo history.
	MaxUndoEntries int
	// Disabled starts the engine with edits rejected.
	Disabled bool
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// SyntaxConfig maps symbols and words to color names.
type SyntaxConfig struct {
	Symbols map[string]string
	Words   map[string]string
	Groups  []SyntaxGroup
}

// SyntaxGroup assigns one color to several symbols and words.
type SyntaxGroup struct {
	Color   string
	Symbols []string
	Words   []string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:       engine.DefaultTabWidth,
			MaxUndoEntries: engine.DefaultMaxUndoEntries,
		},
		Logging: LoggingConfig{
			Level:  logging.LevelInfo.String(),
			Format: string(logging.FormatText),
		},
		Syntax: SyntaxConfig{
			Symbols: make(map[string]string),
			Words:   make(map[string]string),
		},
	}
}

// Load reads the configuration file at path (TOML or YAML by extension),
// applies CODEAREA_* environment overrides, and validates the result.
// An empty path or a missing file yields the defaults plus environment.
func Load(path string) (*Config, error) {
	return LoadFrom(loader.DefaultFS(), path, loader.NewEnvLoader())
}

// LoadFrom is Load with an explicit file system and environment loader.
// env may be nil.
func LoadFrom(fsys loader.FileSystem, path string, env loader.Loader) (*Config, error) {
	var merged map[string]any

	if path != "" {
		l, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	if env != nil {
		data, err := env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, data)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromMap decodes a raw configuration map on top of the defaults.
// Unknown keys are ignored. Type errors are joined into one error.
func FromMap(data map[string]any) (*Config, error) {
	cfg := Default()
	d := &decoder{}

	if editor, ok := d.section(data, "editor"); ok {
		d.intField(editor, "editor.tab_width", "tab_width", &cfg.Editor.TabWidth)
		d.intField(editor, "editor.max_undo_entries", "max_undo_entries", &cfg.Editor.MaxUndoEntries)
		d.boolField(editor, "editor.disabled", "disabled", &cfg.Editor.Disabled)
	}

	if lg, ok := d.section(data, "logging"); ok {
		d.stringField(lg, "logging.level", "level", &cfg.Logging.Level)
		d.stringField(lg, "logging.format", "format", &cfg.Logging.Format)
	}

	if sx, ok := d.section(data, "syntax"); ok {
		d.stringMap(sx, "syntax.symbols", "symbols", cfg.Syntax.Symbols)
		d.stringMap(sx, "syntax.words", "words", cfg.Syntax.Words)
		cfg.Syntax.Groups = d.groups(sx)
	}

	if len(d.errs) > 0 {
		return nil, errors.Join(d.errs...)
	}
	return cfg, nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > MaxTabWidth {
		errs = append(errs, &ValidationError{
			Path:    "editor.tab_width",
			Message: fmt.Sprintf("must be between 1 and %d", MaxTabWidth),
			Value:   c.Editor.TabWidth,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.Editor.MaxUndoEntries < 1 {
		errs = append(errs, &ValidationError{
			Path:    "editor.max_undo_entries",
			Message: "must be positive",
			Value:   c.Editor.MaxUndoEntries,
			Code:    ErrCodeOutOfRange,
		})
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Logging.Level,
			Code:    ErrCodeInvalidEnum,
		})
	}
	switch logging.Format(strings.ToLower(c.Logging.Format)) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, &ValidationError{
			Path:    "logging.format",
			Message: "must be text or json",
			Value:   c.Logging.Format,
			Code:    ErrCodeInvalidEnum,
		})
	}

	_, err := c.BuildSyntax()
	if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// BuildSyntax converts the syntax section into a highlighter.
// Groups are applied first, so explicit symbols and words override them.
func (c *Config) BuildSyntax() (syntax.Syntax, error) {
	hl := syntax.New()
	var errs []error

	for i, g := range c.Syntax.Groups {
		path := fmt.Sprintf("syntax.groups[%d]", i)
		color, err := parseColor(path+".color", g.Color)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		symbols := make([]rune, 0, len(g.Symbols))
		for _, s := range g.Symbols {
			r, err := parseSymbol(path+".symbols", s)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			symbols = append(symbols, r)
		}
		hl = hl.AddOneColorSymbols(symbols, color).AddOneColorWords(g.Words, color)
	}

	for _, s := range sortedKeys(c.Syntax.Symbols) {
		path := "syntax.symbols." + s
		r, err := parseSymbol(path, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		color, err := parseColor(path, c.Syntax.Symbols[s])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		hl = hl.AddSymbol(r, color)
	}

	for _, w := range sortedKeys(c.Syntax.Words) {
		color, err := parseColor("syntax.words."+w, c.Syntax.Words[w])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		hl = hl.AddWord(w, color)
	}

	if len(errs) > 0 {
		return syntax.New(), errors.Join(errs...)
	}
	return hl, nil
}

// EngineOptions returns the engine options for the editor section.
func (c *Config) EngineOptions() []engine.Option {
	opts := []engine.Option{
		engine.WithTabWidth(c.Editor.TabWidth),
		engine.WithMaxUndoEntries(c.Editor.MaxUndoEntries),
	}
	if c.Editor.Disabled {
		opts = append(opts, engine.WithDisabled())
	}
	return opts
}

// LoggerConfig returns the logger settings. Invalid values fall back to
// the logging defaults.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
		cfg.Level = level
	}
	if logging.Format(strings.ToLower(c.Logging.Format)) == logging.FormatJSON {
		cfg.Format = logging.FormatJSON
	}
	return cfg
}

func parseColor(path, name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "default" {
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, &ValidationError{
			Path:    path,
			Message: "unknown color",
			Value:   name,
			Code:    ErrCodeInvalidColor,
		}
	}
	return color, nil
}

func parseSymbol(path, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, &ValidationError{
			Path:    path,
			Message: "symbol must be a single character",
			Value:   s,
			Code:    ErrCodeInvalidSymbol,
		}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
