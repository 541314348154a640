// Command spiresolve runs the expectimax combat solver over one
// configured encounter and prints the §4.G/§6 report to standard
// output.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spiresolve/spiresolve/cli"
	"github.com/spiresolve/spiresolve/report"
	"github.com/spiresolve/spiresolve/search"
	"github.com/spiresolve/spiresolve/xlog"
)

var (
	character = flag.String("character", "Warrior", "starting character preset")
	deck      = flag.String("deck", "", "deck override, e.g. \"5xStrike,4xDefend,Bash\"")
	hp        = flag.String("hp", "full", "starting hp, or \"full\"")
	maxhp     = flag.Int("maxhp", 0, "max hp override; 0 keeps the preset's default")
	relics    = flag.String("relics", "", "comma-separated relic names to add")
	fight     = flag.String("fight", "Jaw Worm", "encounter to solve")
	treeFile  = flag.String("tree_file", "", "if set, dump the solved tree to this path")
	dotFile   = flag.String("dot_file", "", "if set, export the solved decision spine as Graphviz DOT")
	chartFile = flag.String("chart_file", "", "if set, render the hp-change histogram as a PNG")
)

func main() {
	flag.Parse()

	resolved, err := cli.Resolve(cli.Config{
		Character: *character,
		Deck:      *deck,
		HP:        *hp,
		MaxHP:     *maxhp,
		Relics:    *relics,
		Fight:     *fight,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	startHP := resolved.Root.HP
	t := search.Solve(resolved.Store, resolved.Root, resolved.Fight)

	stats := report.Compute(startHP, t.Terminals())
	report.WriteSummary(os.Stdout, stats)

	if *treeFile != "" {
		if err := writeToFile(*treeFile, func(f *os.File) error { return report.WriteTree(f, t) }); err != nil {
			xlog.Warn("could not write tree file: %v", err)
		}
	}
	if *dotFile != "" {
		if err := report.WriteDot(*dotFile, t); err != nil {
			xlog.Warn("could not write dot file: %v", err)
		}
	}
	if *chartFile != "" {
		if err := report.WriteChart(*chartFile, stats); err != nil {
			xlog.Warn("could not write chart file: %v", err)
		}
	}
}

func writeToFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
