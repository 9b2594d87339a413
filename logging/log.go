/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package logging is a thin helper around "github.com/op/go-logging" so that
// every package in this module can get a named, consistently formatted
// logger with a single call.
package logging

import (
	"os"

	golog "github.com/op/go-logging"

	"github.com/Ciekce/syntaks/config"
)

var format = golog.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
)

// GetLog returns a named logger writing to stdout at the level configured
// for "name" in config.Settings.Log (falling back to the general level).
func GetLog(name string) *golog.Logger {
	log := golog.MustGetLogger(name)
	backend := golog.NewLogBackend(os.Stdout, "", 0)
	leveled := golog.AddModuleLevel(golog.NewBackendFormatter(backend, format))
	leveled.SetLevel(golog.Level(config.LevelFor(name)), "")
	golog.SetBackend(leveled)
	return log
}
