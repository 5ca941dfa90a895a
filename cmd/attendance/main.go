package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bayneri/attendance/internal/config"
	"github.com/bayneri/attendance/internal/explain"
	"github.com/bayneri/attendance/internal/logger"
	"github.com/bayneri/attendance/internal/plan"
)

const version = "0.1.0"

type app struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	a := app{cfg: cfg, stdout: os.Stdout, stderr: os.Stderr}
	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		fail(err)
	}
}

func (a app) run(cmd string, args []string) error {
	switch cmd {
	case "project":
		return a.runProject(args)
	case "batch":
		return a.runBatch(args)
	case "validate":
		return a.runValidate(args)
	case "explain":
		return a.runExplain(args)
	case "version":
		fmt.Fprintln(a.stdout, version)
		return nil
	default:
		usage(a.stderr)
		return exitError{code: 1, err: fmt.Errorf("unknown command %q", cmd)}
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "attendance - project how many classes to attend or skip to hold a target")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  attendance project  -attended 60 -total 100 -target 75 -upcoming 10")
	fmt.Fprintln(w, "  attendance batch    -f term.yaml -format md,json,xlsx")
	fmt.Fprintln(w, "  attendance validate -f term.yaml")
	fmt.Fprintf(w, "  attendance explain  %s\n", strings.Join(explain.Topics(), "|"))
	fmt.Fprintln(w, "  attendance version")
}

func (a app) flagSet(cmd string) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a app) newLogger(verbose bool) *slog.Logger {
	level, err := config.ParseLevel(a.cfg.LogLevel)
	if err != nil || verbose {
		level = slog.LevelDebug
	}
	return logger.New(a.stderr, level)
}

func (a app) runValidate(args []string) error {
	fs := a.flagSet("validate")
	file := fs.String("f", "", "path to attendance plan")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*file) == "" {
		return errors.New("-f is required")
	}
	p, err := plan.Load(*file)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Plan %s is valid (%d courses).\n", p.Metadata.Name, len(p.Courses))
	return nil
}

func (a app) runExplain(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("explain requires a topic: %s", strings.Join(explain.Topics(), ", "))
	}
	text, err := explain.Topic(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, text)
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if err == nil {
		os.Exit(1)
	}
	type exitCoder interface {
		ExitCode() int
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		os.Exit(coded.ExitCode())
	}
	os.Exit(1)
}
