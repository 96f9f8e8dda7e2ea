package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/archtab"
	"github.com/npillmayer/archtab/legend"
	"github.com/npillmayer/archtab/qlang"
	"github.com/npillmayer/archtab/query"
	"github.com/npillmayer/archtab/table"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("ATAB") for querying an architecture
// support table. Users enter commands like 'arch alpha' or 'with q & (B|D)';
// ATAB answers from the built-in snapshot, or from a table file given with
// -table. Initial arguments are executed as one command before the loop
// starts.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	tablef := flag.String("table", "", "Table file to load instead of the built-in snapshot")
	mark := flag.String("mark", "*", "Glyph marking supported cells in the table file")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to ATAB")     // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// load the table and set up the query engine
	matrix, err := loadMatrix(*tablef, *mark)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	tracer().Infof("Support matrix %s, %d architectures x %d features",
		matrix.Fingerprint(), matrix.M(), matrix.N())
	//
	// set up REPL
	repl, err := readline.New("atab> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		engine: query.New(matrix),
		repl:   repl,
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if _, err := intp.Execute(input); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadMatrix parses a table file, or hands out the built-in snapshot when no
// file is given.
func loadMatrix(filename string, mark string) (*table.Matrix, error) {
	if filename == "" {
		return table.Builtin()
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	text, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	conv := archtab.DefaultConventions()
	if mark != "" {
		conv.Supported = []rune(mark)[0]
	}
	return table.Parse(filename, string(text), table.WithConventions(conv))
}

// Intp is our interpreter object
type Intp struct {
	engine *query.Engine
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs one console command.
func (intp *Intp) Execute(line string) (bool, error) {
	args := strings.Fields(line)
	cmd := args[0]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.help()
	case "archs":
		intp.printList(intp.engine.AllArchitectures())
	case "feats":
		for _, f := range intp.engine.AllFeatures() {
			intp.printFeature(f)
		}
	case "arch":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: arch <name>")
		}
		feats, err := intp.engine.FeaturesOf(strings.Join(args[1:], " "))
		if err != nil {
			return false, err
		}
		if len(feats) == 0 {
			pterm.Info.Println("none")
		}
		for _, f := range feats {
			intp.printFeature(f)
		}
	case "feat":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: feat <code>")
		}
		archs, err := intp.engine.ArchitecturesWith(strings.Join(args[1:], " "))
		if err != nil {
			return false, err
		}
		intp.printList(archs)
	case "with":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: with <expression>")
		}
		archs, err := qlang.Archs(intp.engine, strings.Join(args[1:], " "))
		if err != nil {
			return false, err
		}
		intp.printList(archs)
	case "desc":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: desc <code>")
		}
		entry, ok := legend.Lookup(args[1])
		if !ok {
			return false, fmt.Errorf("no legend entry for %q", args[1])
		}
		pterm.Info.Println(entry.String())
	case "table":
		intp.renderTable()
	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	pterm.Info.Println("archs          list all architectures")
	pterm.Info.Println("feats          list all features with their meaning")
	pterm.Info.Println("arch <name>    features supported by an architecture")
	pterm.Info.Println("feat <code>    architectures supporting a feature")
	pterm.Info.Println("with <expr>    architectures matching a feature expression, e.g. q & (B|D)")
	pterm.Info.Println("desc <code>    explain a legend code")
	pterm.Info.Println("table          render the support matrix")
	pterm.Info.Println("quit           leave ATAB")
}

// printFeature prints one feature line, with the legend description when the
// feature is a known legend code.
func (intp *Intp) printFeature(f string) {
	if entry, ok := legend.Lookup(f); ok {
		pterm.Info.Println(entry.String())
		return
	}
	pterm.Info.Println(f)
}

func (intp *Intp) printList(names []string) {
	if len(names) == 0 {
		pterm.Info.Println("none")
		return
	}
	pterm.Info.Println(strings.Join(names, " "))
}

// renderTable renders the support matrix as an indented tree, one branch per
// architecture carrying its supported features.
func (intp *Intp) renderTable() {
	m := intp.engine.Matrix()
	pterm.Println(fmt.Sprintf("support matrix, %d architectures x %d features", m.M(), m.N()))
	features := m.Features()
	ll := pterm.LeveledList{}
	for i, arch := range m.Architectures() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: arch})
		bits, _ := m.Row(i) // i is in range by construction
		supported := make([]string, 0, len(features))
		for j, set := range bits {
			if set {
				supported = append(supported, features[j])
			}
		}
		if len(supported) > 0 {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: strings.Join(supported, " ")})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
