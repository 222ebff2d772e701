package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Utility-Gods/uwuify/internal/app"
	"github.com/Utility-Gods/uwuify/internal/cli"
	"github.com/Utility-Gods/uwuify/internal/db"
	"github.com/Utility-Gods/uwuify/internal/menu"
	"github.com/Utility-Gods/uwuify/internal/transform"
	"github.com/Utility-Gods/uwuify/internal/tui"
	"github.com/Utility-Gods/uwuify/internal/version"
)

func main() {
	// The line loop only comes back on a read or write failure, end of input included.
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("uwuify", flag.ContinueOnError)
	fs.SetOutput(stderr)

	styleName := fs.String("style", transform.DefaultStyle, "Style to apply: "+strings.Join(transform.Shortcuts(), ", "))
	file := fs.String("file", "", "Transform every line of this file instead of prompting")
	prompt := fs.String("prompt", cli.Prompt, "Prompt written before every line")
	preview := fs.Bool("tui", false, "Open the live preview")
	showMenu := fs.Bool("menu", false, "Start from the interactive menu")
	noColor := fs.Bool("no-color", false, "Print the prompt without colour")
	showVersion := fs.Bool("version", false, "Print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.VersionInfo())
		return nil
	}

	style, err := transform.Lookup(*styleName)
	if err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}

	myApp := app.NewApp()
	if err := myApp.Select(style.Shortcut); err != nil {
		return err
	}

	switch {
	case *file != "":
		if _, err := cli.TransformFile(*file, stdout, myApp); err != nil {
			return fmt.Errorf("batch failed: %w", err)
		}
		return nil
	case *preview || *showMenu:
		return runInteractive(myApp, *showMenu)
	}

	opts := []cli.Option{cli.WithPrompt(*prompt)}
	if *noColor {
		opts = append(opts, cli.WithTheme(cli.PlainTheme))
	}
	return cli.RunLoop(stdin, stdout, myApp, opts...)
}

func runInteractive(a *app.App, withMenu bool) error {
	store, err := db.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open session journal: %w", err)
	}
	defer store.Close()

	if withMenu {
		return menu.MainMenu(a, store)
	}
	return tui.Run(a, store)
}
