// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package browse is a minimal readline-driven REPL over the crashdump
// façade: a reference driver for the external TUI's read-only
// interface contract, and useful standalone for quick inspection.
package browse

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/erlangtools/crashdump/internal/crashdump"
)

// Run drives the REPL against model until the user quits or the input
// stream closes. in/out back readline's own stdin/stdout.
func Run(model *crashdump.Model, in io.ReadCloser, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "crashdump> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintf(out, "%d processes loaded. Type \"help\" for commands.\n", len(model.ProcessesSortedBy("")))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			printHelp(out)
		case "list":
			for _, pid := range model.ProcessesSortedBy("memory") {
				fmt.Fprintln(out, pid)
			}
		case "proc":
			runProc(model, args, out)
		case "heap":
			runHeap(model, args, out)
		case "stack":
			runStack(model, args, out)
		case "messages":
			runMessages(model, args, out)
		case "groups":
			runGroups(model, out)
		default:
			fmt.Fprintf(out, "unknown command %q; type \"help\"\n", cmd)
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  list              list every pid, sorted by memory
  proc <pid>        show a process's ProcInfo fields
  heap <pid>        decode and show a process's heap
  stack <pid>       decode and show a process's stack
  messages <pid>    decode and show a process's pending messages
  groups            show ancestry groups sorted by memory
  quit              exit
`)
}

func runProc(model *crashdump.Model, args []string, out io.Writer) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: proc <pid>")
		return
	}
	p, ok := model.GetProc(args[0])
	if !ok {
		fmt.Fprintf(out, "no such process %q\n", args[0])
		return
	}
	fmt.Fprintf(out, "%+v\n", p)
}

func runHeap(model *crashdump.Model, args []string, out io.Writer) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: heap <pid>")
		return
	}
	text, err := model.GetHeap(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprint(out, text)
}

func runStack(model *crashdump.Model, args []string, out io.Writer) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: stack <pid>")
		return
	}
	text, err := model.GetStack(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprint(out, text)
}

func runMessages(model *crashdump.Model, args []string, out io.Writer) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: messages <pid>")
		return
	}
	msgs, err := model.GetMessages(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	for _, e := range msgs.Entries {
		fmt.Fprintf(out, "%s: %s\n", e.Address, e.Value)
	}
}

func runGroups(model *crashdump.Model, out io.Writer) {
	for _, g := range model.GroupsSortedByMemory() {
		fmt.Fprintf(out, "%s (%s): %d procs, memory=%d heap=%d\n",
			g.RootPid, g.RootName, len(g.Children), g.TotalMemorySize, g.TotalHeapSize)
	}
}
