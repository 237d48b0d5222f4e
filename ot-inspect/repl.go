package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otinspect/ot"
	"github.com/npillmayer/otinspect/otquery"
	"github.com/npillmayer/otinspect/otreport"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object for interactive inspection.
type Intp struct {
	font *ot.Font
	path string
	repl *readline.Instance
}

func newIntp(otf *ot.Font, path string) (*Intp, error) {
	repl, err := readline.New("ot-inspect > ")
	if err != nil {
		return nil, err
	}
	return &Intp{font: otf, path: path, repl: repl}, nil
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
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.help()
	case "names":
		intp.printNames()
	case "features":
		return false, intp.printFeatures(args)
	case "scripts":
		intp.printScripts()
	case "metrics":
		intp.printMetrics()
	case "tables":
		intp.printTables()
	case "describe":
		return false, intp.describe(args)
	case "report":
		report := otreport.BuildReport(intp.font, intp.path)
		report.Render(os.Stdout)
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	pterm.Println(`Commands:
  names                   resolved naming records
  features [gsub|gpos]    feature tags with descriptions
  scripts                 supported script tags
  metrics                 font metrics and style flags
  tables                  tables contained in the font
  describe <tag>          describe a feature tag
  report                  full inspection report
  quit                    leave`)
}

func (intp *Intp) printNames() {
	names := otquery.ResolveNames(intp.font)
	if len(names.Entries) == 0 {
		pterm.Println("no name entries found")
		return
	}
	if names.FromFallback {
		pterm.Println("no standard name entries found, available names:")
	}
	for _, entry := range names.Entries {
		pterm.Printf("%-17s %s\n", entry.Label+":", entry.Value)
	}
}

func (intp *Intp) printFeatures(args []string) error {
	which := "all"
	if len(args) > 0 {
		which = strings.ToLower(args[0])
	}
	printed := false
	if which == "all" || which == "gsub" {
		printFeatureTags("GSUB", otquery.GSubFeatureTags(intp.font))
		printed = true
	}
	if which == "all" || which == "gpos" {
		printFeatureTags("GPOS", otquery.GPosFeatureTags(intp.font))
		printed = true
	}
	if !printed {
		return fmt.Errorf("unknown feature table %q (expected gsub|gpos)", which)
	}
	return nil
}

func printFeatureTags(table string, tags []string) {
	if len(tags) == 0 {
		pterm.Printf("%s: no features found\n", table)
		return
	}
	pterm.Printf("%s (%d features):\n", table, len(tags))
	for _, tag := range tags {
		pterm.Printf("  %s - %s\n", tag, otquery.FeatureName(tag))
	}
}

func (intp *Intp) printScripts() {
	scripts := otquery.ScriptTags(intp.font)
	if len(scripts) == 0 {
		pterm.Println("no script information found")
		return
	}
	pterm.Printf("scripts: %s\n", strings.Join(scripts, " "))
}

func (intp *Intp) printMetrics() {
	metrics := otquery.FontMetrics(intp.font)
	style := otquery.FontStyle(intp.font)
	pterm.Printf("units/em=%d ascent=%d descent=%d linegap=%d glyphs=%d\n",
		metrics.UnitsPerEm, metrics.Ascent, metrics.Descent, metrics.LineGap,
		otquery.GlyphCount(intp.font))
	pterm.Printf("monospaced=%v bold=%v italic=%v oblique=%v weight=%d width=%s\n",
		style.Monospaced, style.Bold, style.Italic, style.Oblique,
		style.Weight, otquery.WidthClassName(style.WidthClass))
}

func (intp *Intp) printTables() {
	pterm.Printf("font tables: %v\n", otquery.Tables(intp.font))
}

func (intp *Intp) describe(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: describe <tag>")
	}
	for _, tag := range args {
		pterm.Printf("%s - %s\n", tag, otquery.FeatureName(tag))
	}
	return nil
}
