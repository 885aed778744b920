package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/poker"
)

type BatchCmd struct {
	File    string `arg:"" help:"Scenario file, one HOLE [BOARD] [POSITION] [PLAYERS] line per scenario" type:"existingfile"`
	Workers int    `help:"Concurrent evaluation workers (0 uses GOMAXPROCS)" default:"0"`
}

// batchResult holds one evaluated line. Parse and evaluation problems are
// reported per line rather than aborting the run.
type batchResult struct {
	line string
	eval advisor.Evaluation
	rec  advisor.Recommendation
	sit  advisor.Situation
	err  error
}

func (c *BatchCmd) Run(rc *runContext) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	defaults := rc.cfg.DefaultSituation()
	results := make([]batchResult, len(lines))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			results[i] = evaluateLine(rc, line, defaults)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTREET\tHAND\tTIER\tACTION")
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\terror: %v\n", r.line, r.err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.line, r.eval.StreetName, r.eval.HandClass, r.eval.TierName, r.rec.Action)
	}
	return w.Flush()
}

func evaluateLine(rc *runContext, line string, defaults advisor.Situation) batchResult {
	res := batchResult{line: line}

	scenario, err := advisor.ParseScenario(line, defaults)
	if err != nil {
		res.err = err
		return res
	}
	res.sit = scenario.Situation

	res.eval, res.rec, res.err = rc.advisor.Advise(scenario.Hole, scenario.Board, scenario.Situation)
	if res.err == nil {
		rc.logger.Debug("evaluated scenario",
			"hole", poker.FormatCards(scenario.Hole),
			"board", poker.FormatCards(scenario.Board),
			"action", res.rec.Action)
	}
	return res
}
