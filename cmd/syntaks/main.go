/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/profile"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/config"
	"github.com/Ciekce/syntaks/datagen"
	"github.com/Ciekce/syntaks/logging"
	"github.com/Ciekce/syntaks/movegen"
	"github.com/Ciekce/syntaks/tei"
)

func main() {
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	cpuProfile := flag.Bool("cpuprofile", false, "profile CPU while running (datagen only)")
	memProfile := flag.Bool("memprofile", false, "profile heap allocations while running (datagen only)")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *logLvl != "" {
		config.Settings.Log.LogLvl = *logLvl
	}

	args := flag.Args()
	if len(args) == 0 {
		logging.GetLog("tei")
		tei.NewHandler(os.Stdin, os.Stdout).Loop()
		return
	}

	switch args[0] {
	case "datagen":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: syntaks datagen <threads> <out_dir>")
			os.Exit(1)
		}
		threads, err := strconv.Atoi(args[1])
		if err != nil || threads <= 0 {
			fmt.Fprintf(os.Stderr, "invalid thread count %q\n", args[1])
			os.Exit(1)
		}

		if *cpuProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		} else if *memProfile {
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		}

		os.Exit(datagen.Run(threads, args[2]))
	case "perft":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: syntaks perft <tps> <depth>")
			os.Exit(1)
		}
		depth, err := strconv.Atoi(args[2])
		if err != nil || depth < 0 {
			fmt.Fprintf(os.Stderr, "invalid depth %q\n", args[2])
			os.Exit(1)
		}
		pos, err := board.ParseTPS(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "malformed tps: %v\n", err)
			os.Exit(1)
		}
		movegen.SplitPerft(os.Stdout, pos, depth)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		os.Exit(1)
	}
}
