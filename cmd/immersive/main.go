package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/immersive/cmd/immersive/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "dump":
		err = commands.Dump(args)
	case "theme":
		err = commands.Theme(args)
	case "watch":
		err = commands.Watch(args)
	case "version", "-v", "--version":
		fmt.Printf("immersive version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`immersive - in-world GUI layout CLI

Usage: immersive <command> [options]

Commands:
  init      Create immersive.toml and theme.toml in the current directory
  dump      Build the demo menu and print its draw list
  theme     Validate a theme file and print it as TOML or YAML
  watch     Dump the demo menu again whenever the theme file changes
  version   Print version information
  help      Show this help message

Examples:
  immersive init --title "Main Menu"     Start a project
  immersive dump --layout grid           Dump the menu laid out as a grid
  immersive dump --hidden --color never  Include hidden drawables, no color
  immersive theme --format yaml          Print the project theme as YAML
  immersive theme --check my-theme.yaml  Validate a theme file

Configuration:
  Projects are configured via immersive.toml in the project root.
  Run 'immersive init' to create one with the default configuration.`)
}
