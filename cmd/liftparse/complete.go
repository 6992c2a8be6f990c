// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/liftscript/liftscript/ast"
	"github.com/liftscript/liftscript/complete"
	"github.com/liftscript/liftscript/lifterrs"
	"github.com/liftscript/liftscript/parser"
)

// loadExerciseLibrary decodes a YAML file of exercise names, either a bare
// list or a { exercises: [...] } document.
func loadExerciseLibrary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil && len(list) > 0 {
		return list, nil
	}

	var doc struct {
		Exercises []string `yaml:"exercises"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, lifterrs.ErrInvalidExerciseLibrary
	}
	return doc.Exercises, nil
}

func cmdComplete() *cobra.Command {
	var exercisesPath, historyPath, prefix string
	var fuzzy bool

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "suggest exercise names matching a prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exercisesPath == "" && historyPath == "" {
				return lifterrs.ErrMissingInput
			}
			if prefix == "" {
				return lifterrs.ErrMissingPrefix
			}

			trie := complete.NewTrie()

			if exercisesPath != "" {
				names, err := loadExerciseLibrary(exercisesPath)
				if err != nil {
					return err
				}
				logger.Debug("complete", "exercises", len(names))
				trie.InsertExercises(names)
			}

			if historyPath != "" {
				data, err := os.ReadFile(historyPath)
				if err != nil {
					return err
				}
				tree, _ := parser.Parse(string(data))
				names := ast.CollectIdents(tree.Root())
				ranges := ast.CollectIdentRanges(tree.Root())
				logger.Debug("complete", "local exercises", len(names))
				trie.InsertLocalExercises(names, ranges)
			}

			results := trie.CompleteExercise(prefix)
			if len(results) == 0 && fuzzy {
				logger.Debug("complete", "prefix matches", 0, "falling back to", "fuzzy")
				results = trie.FuzzySuggest(prefix)
			}

			display := make([]string, len(results))
			for i, r := range results {
				display[i] = r.Display
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(display)
		},
	}

	cmd.Flags().StringVar(&exercisesPath, "exercises", "", "YAML file listing known exercise names")
	cmd.Flags().StringVar(&historyPath, "history", "", "workout file to seed local exercise names from")
	cmd.Flags().StringVar(&prefix, "prefix", "", "completion prefix")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "fall back to a fuzzy match when the prefix has no exact completions")
	return cmd
}
