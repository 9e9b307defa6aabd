// coursetool is a CLI utility for inspecting and exporting the procedural course.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/minigolf/internal/config"
	"github.com/Faultbox/minigolf/internal/game/round"
	"github.com/Faultbox/minigolf/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "heightmap", "map":
		err = cmdHeightmap(args)
	case "obj", "export":
		err = cmdOBJ(args)
	case "simulate", "sim":
		err = cmdSimulate(args)
	case "init-config":
		err = cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`coursetool - mini golf course utility

Usage:
  coursetool <command> [options]

Commands:
  info         [-config file]                        Show field and mesh statistics
  heightmap    [-config file] [-gray] [-w] [-h] out  Render the course to a PNG
  obj          [-config file] [-water] out           Export the terrain mesh as OBJ
  simulate     [-config file] [-club] [-elevation] [-heading] [-speed]
                                                     Play one shot from the tee headless
  init-config  [out]                                 Write the default config

Examples:
  coursetool info
  coursetool heightmap -w 1600 course.png
  coursetool obj -water lake.obj
  coursetool simulate -club putter -speed 8 -heading 180
  coursetool init-config config.yaml`)
}

// loadCourse reads the config file (or defaults) and builds the course.
func loadCourse(path string) (*config.Config, *round.Course, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, nil, err
		}
	}
	if err := logger.Init(cfg.Logging.Level, ""); err != nil {
		return nil, nil, err
	}
	course, err := round.BuildCourse(cfg.Course, logger.Named("course"))
	if err != nil {
		return nil, nil, err
	}
	return cfg, course, nil
}

func cmdInitConfig(args []string) error {
	path := "config.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Default().SaveTo(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func newFlags(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to config file (default: built-in course)")
	return fs, cfgPath
}
