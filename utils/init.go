package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	minlen       uint
	nodesep      float64
	outputFormat string
	output       string
	task         string
	noColorize   bool
	verbose      bool
}

const (
	_EVAL = iota
	_CLASSIFY
	_OVERLAP
	_COMPONENTS
	_OVERLAP_GRAPH
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%v", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"eval",
	"Evaluate each argument as an interval expression, e. g. \"sin([0, pi]) * 2\"",
}, {
	"classify",
	"Print the sign class of each interval literal",
}, {
	"overlap",
	"Print the overlapping state of two interval literals",
}, {
	"components",
	"Group interval literals into connected components and print the hull of each",
}, {
	"overlap-graph",
	"Render the overlap graph of the interval literals",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

// SetNoColorize toggles colorization programmatically, e. g. in tests.
func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

func (optInterface) Minlen() uint {
	return opts.minlen
}
func (optInterface) Nodesep() float64 {
	return opts.nodesep
}
func (optInterface) OutputFormat() string {
	return opts.outputFormat
}
func (optInterface) Output() string {
	return opts.output
}
func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsEval() bool {
	return opts.task == task[_EVAL].flag
}
func (taskInterface) IsClassify() bool {
	return opts.task == task[_CLASSIFY].flag
}
func (taskInterface) IsOverlap() bool {
	return opts.task == task[_OVERLAP].flag
}
func (taskInterface) IsComponents() bool {
	return opts.task == task[_COMPONENTS].flag
}
func (taskInterface) IsOverlapGraph() bool {
	return opts.task == task[_OVERLAP_GRAPH].flag
}
func (optInterface) Verbose() bool {
	return opts.verbose
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.UintVar(&(opts.minlen), "minlen", 2, "Minimum edge length (for wider output).")
	flag.Float64Var(&(opts.nodesep), "nodesep", 0.35, "Minimum space between two adjacent nodes in the same rank (for taller output).")
	flag.StringVar(&(opts.outputFormat), "format", "svg", "output file format [svg | png | jpg | dot]")
	flag.StringVar(&(opts.output), "o", "overlap", "output file for rendered graphs, without the format extension")
	flag.StringVar(&(opts.task), "task", task[_EVAL].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
