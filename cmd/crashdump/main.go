// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The crashdump tool loads an Erlang/OTP crash dump and opens a
// read-only browser over the reconstructed process state.
// Run "crashdump help" for a list of commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erlangtools/crashdump/internal/browse"
	"github.com/erlangtools/crashdump/internal/crashdump"
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func load(path string) *crashdump.CrashDump {
	cd, err := crashdump.Load(context.Background(), path, crashdump.DefaultOptions())
	if err != nil {
		exitf(1, "%v\n", err)
	}
	return cd
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crashdump",
		Short: "Browse an Erlang/OTP crash dump",
	}

	tui := &cobra.Command{
		Use:   "tui <path>",
		Short: "Open an interactive browser over a crash dump (default command)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cd := load(args[0])
			if cd.Abort != nil {
				exitf(1, "dump aborted: %s\n", cd.Abort.Reason)
			}
			model := crashdump.NewModel(cd)
			if err := browse.Run(model, os.Stdin, os.Stdout); err != nil {
				exitf(2, "%v\n", err)
			}
		},
	}

	jsonCmd := &cobra.Command{
		Use:   "json <path>",
		Short: "Serialize summary views (preamble, memory, processes, groups) as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cd := load(args[0])
			if cd.Abort != nil {
				exitf(1, "dump aborted: %s\n", cd.Abort.Reason)
			}
			model := crashdump.NewModel(cd)
			summary := struct {
				Preamble  crashdump.Preamble    `json:"preamble"`
				Memory    crashdump.MemoryTotals `json:"memory"`
				Processes []string              `json:"processes"`
				Groups    []crashdump.GroupInfo  `json:"groups"`
			}{
				Preamble:  model.Preamble(),
				Memory:    model.Memory(),
				Processes: model.ProcessesSortedBy("memory"),
				Groups:    model.GroupsSortedByMemory(),
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(summary); err != nil {
				exitf(2, "%v\n", err)
			}
		},
	}

	root.AddCommand(tui, jsonCmd)
	// "crashdump <path>" with no subcommand behaves like "crashdump tui <path>".
	root.Args = cobra.MaximumNArgs(1)
	root.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		tui.Run(cmd, args)
	}
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		exitf(2, "%v\n", err)
	}
}
