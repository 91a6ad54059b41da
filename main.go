package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/perlw/soda/config"
	"github.com/perlw/soda/inspect"
	"github.com/perlw/soda/logger"
	"github.com/perlw/soda/myr"
	"github.com/perlw/soda/pompeii"
)

func init() {
	runtime.LockOSThread()
	runtime.GOMAXPROCS(2)
}

var (
	configFile  = flag.String("config", "", "Read settings from a .env file")
	inspectOnly = flag.Bool("inspect", false, "List devices and exit")
	jsonOutput  = flag.Bool("json", false, "With -inspect, print the device list as JSON")
	tuiOutput   = flag.Bool("tui", false, "With -inspect, show the device list in the terminal")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log := logger.New("main")
		if kind := pompeii.KindOf(err); kind != 0 {
			log = log.With("kind", kind.String())
		}
		log.Err(err, "bootstrap failed")
		os.Exit(1)
	}
}

func run() error {
	var files []string
	if *configFile != "" {
		files = append(files, *configFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	if *inspectOnly {
		return inspectDevices(cfg)
	}

	m, err := myr.New(cfg)
	if err != nil {
		return err
	}
	defer m.Destroy()

	logger.New("main").Log("running on %s", m.BackendGPU())

	tick := time.Tick(time.Second / 60)
	for range tick {
		if m.ShouldClose() {
			break
		}
	}
	return nil
}

func inspectDevices(cfg config.Configuration) error {
	m, err := myr.Inspect(cfg)
	if err != nil {
		return err
	}
	defer m.Destroy()

	inventory := m.Inventory()
	switch {
	case *jsonOutput:
		fmt.Println(string(inspect.JSON(inventory)))
	case *tuiOutput:
		return inspect.View(inventory)
	default:
		fmt.Print(inspect.Table(inventory))
	}
	return nil
}
