// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command tearscan surveys Go source trees for constructor-forwarding
// wrappers and type names used as values.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/tearscan/internal/config"
	"fillmore-labs.com/tearscan/internal/format"
	"fillmore-labs.com/tearscan/internal/survey"
)

// version is overridden at release time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tearscan [path...]",
		Short: "Survey Go source trees for rewrite opportunities",
		Long: `Tearscan walks the packages under the given paths and tallies
constructor-forwarding wrappers and type names used in value position,
grouped by category with source examples.

Paths default to the current directory. A directory containing a go.mod
is surveyed as one package root; otherwise its immediate subdirectories
are probed.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSurvey,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the tearscan version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tearscan %s\n", version)
		},
	})

	fl := cmd.Flags()
	fl.Int("limit", 0, "maximum number of packages to analyze (0 = unlimited)")
	fl.Int("jobs", 1, "number of packages analyzed concurrently")
	fl.Int("max-examples", config.Default().MaxExamples, "examples reported per category")
	fl.String("config", "", "configuration file (default: probe "+config.FileName+")")
	fl.String("color", "auto", "colorize output (auto|on|off)")
	fl.Bool("quiet", false, "suppress per-package progress output")
	fl.Bool("tests", false, "include test files")
	fl.Bool("strict", false, "fail the run on the first package that does not resolve")
	fl.Bool("debug", false, "enable debug logging on stderr")

	return cmd
}

func runSurvey(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tearscan:", err)

		return err
	}

	if err := setColorMode(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "tearscan:", err)

		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	out := format.NewText(os.Stdout, cfg.Behavior.Enabled(config.Quiet))
	resolver := survey.GoResolver{Tests: cfg.Behavior.Enabled(config.IncludeTests)}
	driver := survey.New(cfg, resolver, out, newLogger(cmd))

	stats, err := driver.Run(cmd.Context(), paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tearscan:", err)

		return err
	}

	if stats.Errors > 0 {
		return errors.New("survey finished with errors")
	}

	return nil
}

// buildConfig layers the defaults, an optional configuration file and the
// explicitly set command line flags, in that order.
func buildConfig(cmd *cobra.Command) (config.RunConfig, error) {
	cfg := config.Default()
	fl := cmd.Flags()

	path, _ := fl.GetString("config")
	if path == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			path = config.FileName
		}
	}

	if path != "" {
		var err error
		if cfg, err = config.Load(path, cfg); err != nil {
			return cfg, err
		}
	}

	if fl.Changed("limit") {
		cfg.Limit, _ = fl.GetInt("limit")
	}

	if fl.Changed("jobs") {
		cfg.Jobs, _ = fl.GetInt("jobs")
	}

	if fl.Changed("max-examples") {
		cfg.MaxExamples, _ = fl.GetInt("max-examples")
	}

	if fl.Changed("tests") {
		tests, _ := fl.GetBool("tests")
		cfg.Behavior.Set(config.IncludeTests, tests)
	}

	if fl.Changed("strict") {
		strict, _ := fl.GetBool("strict")
		cfg.Behavior.Set(config.RequireResolve, strict)
	}

	if fl.Changed("quiet") {
		quiet, _ := fl.GetBool("quiet")
		cfg.Behavior.Set(config.Quiet, quiet)
	}

	return cfg, nil
}

func setColorMode(cmd *cobra.Command) error {
	mode, _ := cmd.Flags().GetString("color")

	switch mode {
	case "auto": // the color package detects terminals itself

	case "on":
		color.NoColor = false

	case "off":
		color.NoColor = true

	default:
		return fmt.Errorf("invalid color mode %q (auto|on|off)", mode)
	}

	return nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		return nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
