package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bayneri/attendance/internal/evaluate"
	"github.com/bayneri/attendance/internal/plan"
	"github.com/bayneri/attendance/internal/report"
)

type batchOptions struct {
	file          string
	out           string
	format        string
	only          string
	explain       bool
	strict        bool
	timezone      string
	verbose       bool
	failOnPartial bool
}

func (a app) runBatch(args []string) error {
	fs := a.flagSet("batch")

	opts := &batchOptions{}
	fs.StringVar(&opts.file, "f", "", "path to attendance plan")
	fs.StringVar(&opts.out, "out", a.cfg.OutDir, "output directory")
	fs.StringVar(&opts.format, "format", a.cfg.Format, "comma-separated output formats (md, json, xlsx)")
	fs.StringVar(&opts.only, "only", "", "regex to filter course names")
	fs.BoolVar(&opts.explain, "explain", false, "include formulas in the markdown summary")
	fs.BoolVar(&opts.strict, "strict", a.cfg.Strict, "reject more attended classes than held classes")
	fs.StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone for reports")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose output")
	fs.BoolVar(&opts.failOnPartial, "fail-on-partial", false, "exit non-zero if any course cannot be projected")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(opts.file) == "" {
		return errors.New("-f is required")
	}

	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	var only *regexp.Regexp
	if opts.only != "" {
		only, err = regexp.Compile(opts.only)
		if err != nil {
			return fmt.Errorf("invalid --only regex: %w", err)
		}
	}
	formats := parseFormat(opts.format)
	for _, format := range formats {
		if format != "md" && format != "json" && format != "xlsx" {
			return fmt.Errorf("unknown format %q", format)
		}
	}

	p, err := plan.Load(opts.file)
	if err != nil {
		return err
	}

	log := a.newLogger(opts.verbose)
	summary, outDir, err := evaluate.Run(p, evaluate.Options{
		OutDir:   opts.out,
		Only:     only,
		Strict:   opts.strict,
		Defaults: plan.Defaults{Target: a.cfg.Target, Upcoming: a.cfg.Upcoming},
		Logger:   log,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if includesFormat(formats, "md") {
		if err := report.WriteMarkdownSummary(filepath.Join(outDir, "summary.md"), summary, report.Options{Explain: opts.explain, Timezone: loc}); err != nil {
			return err
		}
	}
	if includesFormat(formats, "json") {
		if err := report.WriteSummaryJSON(filepath.Join(outDir, "summary.json"), summary); err != nil {
			return err
		}
	}
	if includesFormat(formats, "xlsx") {
		if err := report.WriteWorkbook(filepath.Join(outDir, "summary.xlsx"), summary); err != nil {
			return err
		}
	}
	if len(summary.Errors) > 0 {
		if err := report.WriteErrorsMarkdown(filepath.Join(outDir, "errors.md"), summary.Errors); err != nil {
			return err
		}
	}
	log.Debug("wrote reports", "dir", outDir, "formats", strings.Join(formats, ","))

	fmt.Fprintf(a.stdout, "Wrote projection for %d courses to %s\n", len(summary.Courses), outDir)

	if len(summary.Errors) > 0 {
		if opts.failOnPartial {
			return exitError{code: exitPartial, err: errors.New("partial projection")}
		}
		fmt.Fprintln(a.stdout, "Partial projection: some courses could not be projected.")
	}
	return nil
}

func parseFormat(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{"md", "json"}
	}
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{"md", "json"}
	}
	return out
}

func includesFormat(formats []string, value string) bool {
	for _, format := range formats {
		if format == value {
			return true
		}
	}
	return false
}
