// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/liftscript/liftscript/hir"
	"github.com/liftscript/liftscript/lifterrs"
	"github.com/liftscript/liftscript/parser"
)

func cmdQuery() *cobra.Command {
	var input, path string

	cmd := &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "project a single field out of a parsed workout's JSON form",
		Long: `query lowers a workout file to its JSON representation and evaluates a
gjson path expression against it, the way an editor might script against
this library's output without re-implementing the lowering logic.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return lifterrs.ErrMissingInput
			}
			if strings.ToLower(filepath.Ext(input)) != ".txt" {
				return lifterrs.ErrNotATextFile
			}
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return lifterrs.ErrMissingQuery
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}

			tree, errs := parser.Parse(string(data))
			w, _ := hir.Lower(tree.Root())

			encoded, err := json.Marshal(struct {
				Workout hir.Workout         `json:"workout"`
				Errors  []parser.ParseError `json:"errors"`
			}{Workout: w, Errors: errs})
			if err != nil {
				return err
			}

			result := gjson.GetBytes(encoded, path)
			if !result.Exists() {
				logger.Warn("query", "path", path, "result", "no match")
				return nil
			}
			fmt.Println(result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "workout file to parse")
	cmd.Flags().StringVar(&path, "query", "", "gjson path expression, e.g. workout.set_groups.0.exercise")
	return cmd
}
