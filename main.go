package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cs-au-dk/ivl/graph"
	"github.com/cs-au-dk/ivl/interval"
	"github.com/cs-au-dk/ivl/literal"
	"github.com/cs-au-dk/ivl/utils"

	"github.com/fatih/color"
)

var opts = utils.Opts()

var errArgCount = errors.New("wrong number of arguments")

var colorize = struct {
	Expr func(...interface{}) string
	Hull func(...interface{}) string
}{
	Expr: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.Bold).SprintFunc())(is...)
	},
	Hull: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
}

func main() {
	utils.ParseArgs()
	args := flag.Args()
	if len(args) == 0 {
		log.Fatalln("No arguments given. See -help for usage.")
	}

	defer utils.TimeTrack(time.Now(), "Task")

	var err error
	switch task := opts.Task(); {
	case task.IsEval():
		err = evalTask(os.Stdout, args)
	case task.IsClassify():
		err = classifyTask(os.Stdout, args)
	case task.IsOverlap():
		err = overlapTask(os.Stdout, args)
	case task.IsComponents():
		err = componentsTask(os.Stdout, args)
	case task.IsOverlapGraph():
		err = overlapGraphTask(os.Stdout, args)
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}

// parseIntervals parses every argument as an interval literal.
func parseIntervals(args []string) ([]interval.Interval, error) {
	xs := make([]interval.Interval, 0, len(args))
	for i, arg := range args {
		x, err := literal.ParseInterval(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func evalTask(w io.Writer, args []string) error {
	ev := literal.NewEvaluator()
	for _, arg := range args {
		expr, err := literal.Parse(arg)
		if err != nil {
			return err
		}
		v, err := ev.Eval(expr)
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", expr, err)
		}
		fmt.Fprintf(w, "%s = %s\n", colorize.Expr(expr.String()), v)
	}

	opts.OnVerbose(func() {
		log.Printf("Evaluated %d distinct subexpressions\n", ev.Memoized())
	})
	return nil
}

func classifyTask(w io.Writer, args []string) error {
	xs, err := parseIntervals(args)
	if err != nil {
		return err
	}
	for _, x := range xs {
		fmt.Fprintf(w, "%s %s\n", x, x.Classify())
	}
	return nil
}

func overlapTask(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: overlap expects 2 intervals, got %d", errArgCount, len(args))
	}
	xs, err := parseIntervals(args)
	if err != nil {
		return err
	}
	x, y := xs[0], xs[1]
	fmt.Fprintf(w, "%s %s %s\n", x, x.Overlap(y), y)
	return nil
}

func componentsTask(w io.Writer, args []string) error {
	xs, err := parseIntervals(args)
	if err != nil {
		return err
	}
	for _, comp := range interval.Components(xs...) {
		members := make([]string, len(comp))
		for i, x := range comp {
			members[i] = x.String()
		}
		fmt.Fprintf(w, "%s %s: %s\n",
			colorize.Hull("hull"), interval.Hull(comp...), strings.Join(members, " "))
	}
	return nil
}

func overlapGraphTask(w io.Writer, args []string) error {
	xs, err := parseIntervals(args)
	if err != nil {
		return err
	}
	img, err := graph.RenderOverlapGraph(opts.Output(), xs...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Overlap graph written to", img)
	return nil
}
