package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/otinspect"
	"github.com/npillmayer/otinspect/ot"
	"github.com/npillmayer/otinspect/otreport"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'otinspect'
func tracer() tracing.Trace {
	return tracing.Select("otinspect")
}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("ot-inspect").
		SetVersion("v0.1.0").
		SetDescription("Inspect OpenType fonts: naming, metrics, features and scripts.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("report").
		SetDescription("Print an inspection report for an OpenType font (TTF, OTF or TTC).").
		SetShortDescription("font report").
		AddArgument("font", "OpenType font file path", "").
		AddFlag("face,F", "face index for font collections (TTC)", commando.Int, 0).
		AddFlag("errors,e", "print parse errors and warnings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runReportCommand)

	commando.
		Register("repl").
		SetDescription("Inspect an OpenType font interactively.").
		SetShortDescription("interactive mode").
		AddArgument("font", "OpenType font file path", "").
		AddFlag("face,F", "face index for font collections (TTC)", commando.Int, 0).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runReplCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.otinspect":        "Error",
		"trace.otinspect.ot":     "Error",
		"trace.otinspect.query":  "Error",
		"trace.otinspect.report": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func setTraceLevel(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error", "":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		fatalf("invalid trace level: %s", level)
	}
}

func runReportCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	face := mustFlagInt(flags["face"], "face")
	otf := mustLoadFont(fontPath, face)

	report := otreport.BuildReport(otf, fontPath)
	report.FaceIndex = face
	report.Render(os.Stdout)

	showIssues, err := flags["errors"].GetBool()
	if err != nil {
		fatalf("invalid --errors flag: %v", err)
	}
	if showIssues {
		report.RenderIssues(os.Stdout)
	}
}

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	face := mustFlagInt(flags["face"], "face")
	otf := mustLoadFont(fontPath, face)

	pterm.Info.Println("Welcome to the OpenType inspector")
	pterm.Info.Println("Type 'help' for commands, quit with <ctrl>D")
	intp, err := newIntp(otf, fontPath)
	if err != nil {
		fatalf("%v", err)
	}
	intp.REPL()
}

func mustLoadFont(path string, face int) *ot.Font {
	sf, err := otinspect.LoadOpenTypeFace(path, face)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	otf, err := ot.ParseFace(sf.Binary, face)
	if err != nil {
		fatalf("cannot parse font %s: %v", path, err)
	}
	return otf
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-inspect: "+format+"\n", args...)
	os.Exit(1)
}
