// Package config provides the configuration system for codearea.
//
// Configuration is assembled in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority (applied by cmd)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← CODEAREA_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← codearea.toml / codearea.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//   - watcher: File watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load("codearea.toml")
//	if err != nil {
//	    return err
//	}
//	hl, err := cfg.BuildSyntax()
//	if err != nil {
//	    return err
//	}
//	eng := engine.New(cfg.EngineOptions()...)
//
// # File Format
//
//	[editor]
//	tab_width = 4
//	max_undo_entries = 1000
//	disabled = false
//
//	[logging]
//	level = "info"
//	format = "text"
//
//	[syntax.symbols]
//	"{" = "yellow"
//
//	[syntax.words]
//	return = "red"
//
//	[[syntax.groups]]
//	color = "blue"
//	words = ["fn", "let", "if", "else"]
//	symbols = ["(", ")"]
//
// Colors are tcell color names ("red", "darkcyan") or hex values ("#ff8800").
package config
