// Command profile runs a fixed benchmark set of phrases through the
// recognizer and reports per-call latency (spec §6: "runs a fixed
// benchmark set"). It is a collaborator harness, not part of the core
// recognizer (spec §1).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/gravwell/entitygrinder/entity"
	log "github.com/gravwell/entitygrinder/internal/logging"
)

var benchmarkSet = []string{
	"tomorrow at 3pm",
	"in 3 days",
	"between 3 and 5 pm",
	"next Monday",
	"the 2nd week of next month",
	"70 degrees fahrenheit",
	"$42.50",
	"about 20 euros",
	"3 feet 10 inches",
	"7 meters",
	"a dozen eggs",
	"three thousand four hundred",
	"the 3rd of March, 2013",
	"contact me at jane.doe@example.com",
	"visit https://example.com/path?x=1",
	"call me at (555) 123-4567",
	"4111 1111 1111 1111",
	"last week",
	"the weekend",
	"Christmas Eve",
}

func main() {
	var (
		classifierDir = flag.String("classifiers", "", "directory of per-language classifier JSON files")
		lang          = flag.String("lang", "en", "language to benchmark")
		iterations    = flag.Int("n", 100, "iterations over the benchmark set")
	)
	flag.Parse()

	lg := log.NewDiscardLogger()

	eng, err := entity.NewEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", err)
		os.Exit(1)
	}
	if *classifierDir != "" {
		if err := eng.LoadClassifier(*lang, *classifierDir+"/"+*lang+".json"); err != nil {
			lg.Warnf("loading classifier: %v", err)
		}
	}

	ctx := entity.Context{
		ReferenceTime: time.Date(2013, time.February, 13, 4, 30, 0, 0, time.UTC),
		Locale:        entity.Locale{Lang: language.Make(*lang)},
	}

	start := time.Now()
	var total int
	for i := 0; i < *iterations; i++ {
		for _, text := range benchmarkSet {
			ents, err := eng.Parse(text, nil, ctx, entity.Options{})
			if err != nil {
				lg.Errorf("parse %q: %v", text, err)
				continue
			}
			total += len(ents)
		}
	}
	elapsed := time.Since(start)
	calls := *iterations * len(benchmarkSet)
	fmt.Printf("%d calls in %s (%.3fms/call, %d entities total)\n",
		calls, elapsed, float64(elapsed.Microseconds())/1000/float64(calls), total)
}
