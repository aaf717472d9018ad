package main

import (
	"io"
	"log/slog"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// CLI defines the command-line interface structure for Kong.
// Defaults reproduce a plain run against the public catalog.
type CLI struct {
	Origin       string        `default:"https://www.cardsphere.com" help:"Catalog site origin"`
	Out          string        `short:"o" default:"./scrape/scraped_data" help:"Directory for the JSON artifact"`
	SetCodes     string        `name:"set-codes" default:"./scrape/setcodes.json" help:"Set name to set code table (.json, .yaml or .yml)"`
	Selectors    string        `help:"YAML file overriding the default CSS selectors"`
	UserDataDir  string        `default:"./scrape/tmp" help:"Browser profile directory kept between runs (empty for a throwaway profile)"`
	Settle       time.Duration `default:"750ms" help:"Fixed wait after each set page loads"`
	ReadyTimeout time.Duration `default:"10s" help:"How long to wait for the card list to appear"`
	NavTimeout   time.Duration `default:"30s" help:"Navigation timeout per page"`
	Headful      bool          `help:"Show the browser window"`
	LogLevel     string        `default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFile      string        `type:"path" help:"Write logs to a rotating file instead of stderr"`
}

// newLogger builds the run logger. The returned func closes the log file, if any.
func newLogger(cli *CLI, stderr io.Writer) (*slog.Logger, func()) {
	var level slog.Level
	_ = level.UnmarshalText([]byte(cli.LogLevel))

	var w io.Writer = stderr
	closeFn := func() {}
	if cli.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cli.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
		}
		w = lj
		closeFn = func() { _ = lj.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn
}
