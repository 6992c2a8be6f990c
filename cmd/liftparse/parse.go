// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/liftscript/liftscript/ast"
	"github.com/liftscript/liftscript/hir"
	"github.com/liftscript/liftscript/lifterrs"
	"github.com/liftscript/liftscript/parser"
)

type parseResult struct {
	Workout hir.Workout         `json:"workout"`
	Errors  []parser.ParseError `json:"errors"`
}

// runParse parses the file at path and writes the selected representation
// to out. format selects between the CST dump, the lowered-HIR JSON, and
// the lowered-HIR CBOR encodings.
func runParse(path, format string, out *os.File) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(data)

	tree, errs := parser.Parse(source)

	switch format {
	case "dump":
		_, err := fmt.Fprint(out, ast.Dump(tree.Root()))
		return err
	case "json", "cbor":
		w, _ := hir.Lower(tree.Root())
		result := parseResult{Workout: w, Errors: errs}
		if errs == nil {
			result.Errors = []parser.ParseError{}
		}
		if format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		encoded, err := cbor.Marshal(result)
		if err != nil {
			return err
		}
		_, err = out.Write(encoded)
		return err
	default:
		return lifterrs.ErrUnknownFormat
	}
}

func cmdParse() *cobra.Command {
	var input, format, outputPath string
	var watch bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "parse a workout file and print its syntax tree or lowered form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return lifterrs.ErrMissingInput
			}
			if strings.ToLower(filepath.Ext(input)) != ".txt" {
				return lifterrs.ErrNotATextFile
			}
			switch format {
			case "json", "cbor", "dump":
			default:
				return lifterrs.ErrUnknownFormat
			}

			run := func() error {
				out := os.Stdout
				if outputPath != "" {
					f, err := os.Create(outputPath)
					if err != nil {
						return err
					}
					defer f.Close()
					out = f
				}
				if err := runParse(input, format, out); err != nil {
					return err
				}
				if outputPath != "" {
					logger.Info("parse", "created", outputPath)
				}
				return nil
			}

			if err := run(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			if err := watcher.Add(filepath.Dir(input)); err != nil {
				return err
			}

			abs, err := filepath.Abs(input)
			if err != nil {
				return err
			}

			logger.Info("parse", "watching", input)
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					changed, err := filepath.Abs(event.Name)
					if err != nil || changed != abs {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					logger.Debug("parse", "event", event.String())
					if err := run(); err != nil {
						logger.Error("parse", "error", err)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Error("parse", "watch error", err)
				}
			}
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "workout file to parse")
	cmd.Flags().StringVar(&format, "format", "json", "output format (json|cbor|dump)")
	cmd.Flags().StringVar(&outputPath, "output", "", "write results to file instead of stdout")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-parse and re-print whenever the input file changes")
	return cmd
}
