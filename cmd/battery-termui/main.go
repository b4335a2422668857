package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"battery-termui/internal/app"
	"battery-termui/internal/policy"
)

const logFile = "battery-termui.out.log"

var version = "n/a"

func main() {
	var (
		versionFlag  = flag.Bool("version", false, "application version")
		debugFlag    = flag.Bool("debug", false, "run application in debug mode")
		intervalFlag = flag.Duration("interval", time.Second*10, "battery poll interval")
		styleFlag    = flag.String("style", "normal", `battery style {"normal", "circle", "percent", "circle-percent", "gone"}`)
		tintFlag     = flag.String("tint", "", "icon tint override as RRGGBB hex")
	)

	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		os.Exit(0)
	}

	style, err := policy.ParseStyle(*styleFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	tint, err := policy.ParseTint(*tintFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger := log.New()
	logger.Out = io.Discard

	if *debugFlag {
		logger.SetLevel(log.DebugLevel)

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			panic(errors.New("failed to log to file"))
		}
		logger.Out = file
	}

	a := app.New(*intervalFlag, style, tint, logger)
	os.Exit(a.Run())
}
