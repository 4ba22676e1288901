// Command puzzlekit runs registered puzzle solvers against input files.
//
// Usage:
//
//	puzzlekit -day 17 -part 1 [-input path] [-t]
//	puzzlekit -day 17          # both parts
//	puzzlekit -all [-t]        # every registered day, both parts
//
// Without -input, the input is read from input/day<N>.txt relative to the
// working directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/puzzlekit/solve"
)

var log = logrus.New()

func main() {
	var (
		day      = flag.Int("day", 0, "puzzle day to run")
		part     = flag.Int("part", 0, "puzzle part to run (0 = both)")
		input    = flag.String("input", "", "input file override")
		showTime = flag.Bool("t", false, "print per-part wall time")
		all      = flag.Bool("all", false, "run every registered day")
	)
	flag.Parse()

	switch {
	case *all:
		for _, d := range solve.Days() {
			runDay(d, 0, "", *showTime)
		}
	case *day > 0:
		runDay(*day, *part, *input, *showTime)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runDay executes one or both parts of a day, loading the input once.
func runDay(day, part int, inputPath string, showTime bool) {
	input, err := loadInput(day, inputPath)
	if err != nil {
		log.WithFields(logrus.Fields{"day": day, "error": err}).Fatal("input not available")
	}

	parts := []int{1, 2}
	if part != 0 {
		parts = []int{part}
	}
	for _, p := range parts {
		runPart(day, p, input, showTime)
	}
}

// runPart dispatches one (day, part) pair and prints the answer.
func runPart(day, part int, input string, showTime bool) {
	start := time.Now()
	answer, err := solve.Run(day, part, input)
	elapsed := time.Since(start)
	if err != nil {
		log.WithFields(logrus.Fields{
			"day":   day,
			"part":  part,
			"error": err,
		}).Fatal("solver failed")
	}

	fmt.Printf("===== Day %d Part %d =====\n", day, part)
	fmt.Println(answer)
	if showTime {
		fmt.Printf("Finished in: %s\n", elapsed.Round(time.Microsecond))
	}
}

// loadInput reads the override path when given, or input/day<N>.txt.
func loadInput(day int, override string) (string, error) {
	path := override
	if path == "" {
		path = fmt.Sprintf("input/day%d.txt", day)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
