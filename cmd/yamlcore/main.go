// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary exercises the yamlcore library end to end: it reads a YAML
// document from stdin or a file, and either prints its canonical event
// display form or re-presents it under caller-chosen formatting options;
// one run does one or the other, not both.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"

	yamlcore "github.com/streamyaml/yamlcore"
)

func main() {
	eventsMode := flag.Bool("events", false, "print the canonical display() event stream")
	indent := flag.Int("indent", 2, "presenter indentation step")
	width := flag.Int("width", 80, "presenter line-wrap width (0 disables wrapping)")
	flow := flag.Bool("flow", false, "present containers in flow style")
	jsonMode := flag.Bool("json", false, "present in JSON-compatible quoting")
	noColor := flag.Bool("no-color", false, "disable colorized diagnostics")
	flag.Parse()

	diag := colorable.NewColorableStderr()
	warnColor := color.New(color.FgYellow)
	errColor := color.New(color.FgRed, color.Bold)
	if *noColor {
		color.NoColor = true
	}

	input, err := openInput(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	defer input.Close()

	data, err := io.ReadAll(input)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	parser := yamlcore.NewParser(data)
	parser.SetWarnFunc(func(msg string) {
		warnColor.Fprintf(diag, "warning: %s\n", msg)
	})

	if *eventsMode {
		if err := printEvents(parser); err != nil {
			errColor.Fprintf(diag, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := yamlcore.DefaultPresenterOptions()
	opts.Indent = *indent
	opts.Width = *width
	if *flow {
		opts.Containers = "flow"
	}
	if *jsonMode {
		opts.Quoting = "json"
	}
	if err := opts.Validate(); err != nil {
		errColor.Fprintf(diag, "invalid options: %v\n", err)
		os.Exit(1)
	}

	if err := yamlcore.NewPresenter(os.Stdout, opts).Present(parser); err != nil {
		errColor.Fprintf(diag, "error: %v\n", err)
		os.Exit(1)
	}
}

func printEvents(p *yamlcore.Parser) error {
	for {
		var ev yamlcore.Event
		if err := p.Parse(&ev); err != nil {
			return err
		}
		fmt.Println(yamlcore.Display(ev))
		if ev.Kind == yamlcore.StreamEndEvent {
			return nil
		}
	}
}

func openInput(args []string) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
		return io.NopCloser(os.Stdin), nil
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", args[0], err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("only one file argument supported")
	}
}
