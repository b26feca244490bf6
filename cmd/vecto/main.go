package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/esimov/vecto/calc"
	"github.com/esimov/vecto/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬  ┬┌─┐┌─┐┌┬┐┌─┐
└┐┌┘├┤ │   │ │ │
 └┘ └─┘└─┘ ┴ └─┘

2D vector calculator.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	operation = flag.String("op", "", "Operation: "+strings.Join(calc.Ops(), ", "))
	first     = flag.String("a", "", `First vector, as "x,y" or "polar:magnitude,heading"`)
	second    = flag.String("b", "", "Second vector, for binary operations")
	scalar    = flag.Float64("s", 0, "Scalar used by scale, div and rotate")
	source    = flag.String("in", "", "YAML batch file (use - for stdin)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	deco := utils.Decorator{Enabled: term.IsTerminal(int(os.Stdout.Fd()))}

	batch, err := loadBatch()
	if err != nil {
		log.Fatalf(deco.Text("%v", utils.ErrorMessage), err)
	}
	if len(batch.Steps) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	format := func(s calc.Step, r calc.Result) string {
		return deco.Text(s.Label()+":", utils.StatusMessage) + " " +
			deco.Text(r.String(), utils.SuccessMessage)
	}
	if err := calc.RunWith(batch, os.Stdout, format); err != nil {
		log.Fatalf(deco.Text("%v", utils.ErrorMessage), err)
	}
}

// loadBatch builds the list of operations either from the batch file or from the flags.
func loadBatch() (*calc.Batch, error) {
	if len(*source) > 0 {
		var r io.Reader
		if *source == pipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, fmt.Errorf("`-` should be used with a pipe for stdin")
			}
			r = os.Stdin
		} else {
			f, err := os.Open(*source)
			if err != nil {
				return nil, fmt.Errorf("unable to open the batch file: %w", err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					log.Printf("could not close the opened file: %v", err)
				}
			}()
			r = f
		}
		return calc.LoadBatch(r)
	}

	if len(*operation) == 0 {
		return &calc.Batch{}, nil
	}
	step := calc.Step{Op: *operation, Scalar: *scalar}
	for _, arg := range []string{*first, *second} {
		if len(arg) == 0 {
			continue
		}
		op, err := calc.ParseOperand(arg)
		if err != nil {
			return nil, err
		}
		step.Args = append(step.Args, op)
	}
	return &calc.Batch{Steps: []calc.Step{step}}, nil
}
