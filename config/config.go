/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package config holds process-wide settings read from a TOML file and
// overridable from the command line, in the style the rest of the ambient
// stack (logging, cmd/syntaks) expects.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the TOML config file, settable before Setup().
var ConfFile = "./config/config.toml"

// Settings is the global, process-wide configuration.
var Settings conf

var initialized = false

type conf struct {
	Log     logConfiguration
	Search  searchConfiguration
	Eval    evalConfiguration
	Datagen datagenConfiguration
}

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
	TeiLogLvl    string
	DatagenLogLvl string
}

// LogLevels maps the human-readable level names used in config.toml and on
// the command line to go-logging's numerical levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
	Settings.Log.TeiLogLvl = "info"
	Settings.Log.DatagenLogLvl = "info"
}

// LevelFor returns the configured go-logging level for a named logger,
// falling back to the general log level for unrecognised names.
func LevelFor(name string) int {
	switch name {
	case "search":
		return LogLevels[orDefault(Settings.Log.SearchLogLvl, Settings.Log.LogLvl)]
	case "tei":
		return LogLevels[orDefault(Settings.Log.TeiLogLvl, Settings.Log.LogLvl)]
	case "datagen":
		return LogLevels[orDefault(Settings.Log.DatagenLogLvl, Settings.Log.LogLvl)]
	default:
		return LogLevels[orDefault(Settings.Log.LogLvl, "info")]
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Setup reads the config file at ConfFile, applying defaults for anything
// missing or malformed. It is safe to call more than once; only the first
// call has effect.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Println("config: using defaults:", err)
	}

	initialized = true
}
