// Command lpvet recognizes and vets LP files, reporting errors for
// malformed input and (with -warn) advisories for declared-but-unused
// variables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/uluyol/lpparse/lp"
	"github.com/uluyol/lpparse/lpio"
	"github.com/uluyol/lpparse/lpyaml"
)

var (
	cmdIssueWarnings = flag.Bool("warn", false, "issue warnings in addition to errors")
	cmdYAMLOut       = flag.String("yaml", "", "write the parsed problem as YAML to this path (only when a single file is given)")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lpvet f.lp [f.lp...]")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("lpvet: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	if *cmdYAMLOut != "" && flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "lpvet: -yaml requires exactly one input file")
		os.Exit(2)
	}

	issuedMesg := false
	for _, p := range flag.Args() {
		err, issued := vet(p, *cmdIssueWarnings, *cmdYAMLOut)
		issuedMesg = issuedMesg || issued
		if err != nil {
			log.Print(err)
			issuedMesg = true
		}
	}

	if issuedMesg {
		os.Exit(1)
	}
}

// vet reads, recognizes and assembles the LP file at path, returning the
// first read or parse error for the caller to log. If issueWarnings, it
// logs one line per parser diagnostic and per unused typed variable,
// skipping a line whose text (position included) was already logged for
// this file, the way the teacher's issuedFor map does.
func vet(path string, issueWarnings bool, yamlOut string) (error, bool) {
	text, err := lpio.ReadFile(path)
	if err != nil {
		return err, false
	}

	sink := &lp.CollectingSink{}
	problem, perr := lp.ParseWithOptions(text, lp.ParseOptions{Sink: sink})
	if perr != nil {
		if lerr, ok := perr.(*lp.Error); ok {
			return fmt.Errorf("%s:%s: %s", path, linecol(text, lerr.Offset), lerr), false
		}
		return fmt.Errorf("%s: %w", path, perr), false
	}

	issued := false
	issuedFor := make(map[string]bool)
	issue := func(format string, args ...any) {
		key := fmt.Sprintf(format, args...)
		if !issuedFor[key] {
			log.Printf("%s: %s", path, key)
			issued = true
			issuedFor[key] = true
		}
	}

	if issueWarnings {
		for _, d := range sink.Diagnostics {
			issue("%s: warning: %s", linecol(text, d.Offset), d.Message)
		}
		for name, unused := range unusedTypedVars(problem) {
			if unused {
				issue("warning: no use of declared var %s", name)
			}
		}
	}

	if yamlOut != "" {
		out, merr := lpyaml.Marshal(problem)
		if merr != nil {
			return fmt.Errorf("%s: %w", path, merr), issued
		}
		if werr := os.WriteFile(yamlOut, out, 0o644); werr != nil {
			return fmt.Errorf("%s: %w", path, werr), issued
		}
	}

	return nil, issued
}

// linecol renders a byte offset into text as "line:col" (both 1-based), the
// same file-position spelling the teacher's Pos type produced, extended
// with a column since lp.Error reports a byte offset rather than a line.
func linecol(text string, offset int) string {
	if offset > len(text) {
		offset = len(text)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("%d:%d", line, col)
}

// unusedTypedVars reports, for every variable with a non-Continuous type
// (i.e. one that appeared in a Generals/Integers/Binaries/Semi section),
// whether it was ever referenced in an objective or constraint.
func unusedTypedVars(p *lp.Problem) map[string]bool {
	used := make(map[string]bool)
	for _, o := range p.Objectives {
		for _, c := range o.Coefficients {
			used[c.Name] = true
		}
	}
	for _, c := range p.Constraints {
		for _, co := range c.Coefficients {
			used[co.Name] = true
		}
		if c.Kind == lp.IndicatorConstraint {
			used[c.IndicatorVar] = true
			if c.Inner != nil {
				for _, co := range c.Inner.Coefficients {
					used[co.Name] = true
				}
			}
		}
	}

	result := make(map[string]bool)
	for name, v := range p.Variables {
		if v.Type != lp.Continuous {
			result[name] = !used[name]
		}
	}
	return result
}
