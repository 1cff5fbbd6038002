package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kura-code/kura/internal/app"
)

const version = "0.1.0"

func printHelp() {
	fmt.Print(`kura - dual-pane terminal file manager

USAGE:
    kura [DIR]

OPTIONS:
    -h, --help     Show this help message and exit
    --version      Print the version and exit

KEYS:
    j/k (with count), gg, G   move
    h/l                       parent directory / switch pane
    Enter                     open directory, text viewer or image viewer
    v, V                      mark entry, visual select
    y, p                      copy, paste
    x, X                      delete (with / without confirmation)
    /, r, s                   search, rename, sort
    q                         quit
`)
}

func main() {
	// UTF-8 fallback keeps non-ASCII names rendering on odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	startDir := ""
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		case "--version":
			fmt.Println("kura " + version)
			os.Exit(0)
		default:
			startDir = arg
		}
	}

	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving working directory: %v\n", err)
			os.Exit(1)
		}
		startDir = cwd
	}

	app, err := apppkg.NewApplication(startDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
