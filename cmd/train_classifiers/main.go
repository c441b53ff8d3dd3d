// Command train_classifiers tallies rule-level positive/negative counts
// against a hand-labeled corpus and writes one classifier JSON file per
// language, in the {positive_count, negative_count, total} shape rank.LoadTable
// reads (spec §6's classifier file format). It is a collaborator harness,
// not part of the core recognizer (spec §1).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"golang.org/x/text/language"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/config"
	log "github.com/gravwell/entitygrinder/internal/logging"
	"github.com/gravwell/entitygrinder/rank"
	"github.com/gravwell/entitygrinder/rules/en"
	"github.com/gravwell/entitygrinder/rules/es"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a train_classifiers gcfg config file")
		corpusPath = flag.String("corpus", "", "path to a labeled corpus JSON file")
		outputDir  = flag.String("output", "", "directory to write per-language classifier files")
	)
	flag.Parse()

	var cfg Config
	if *configPath != "" {
		if err := config.LoadConfigFile(&cfg, *configPath); err != nil {
			fmt.Fprintf(os.Stderr, "train_classifiers: loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *corpusPath != "" {
		cfg.Global.CorpusPath = *corpusPath
	}
	if *outputDir != "" {
		cfg.Global.OutputDir = *outputDir
	}
	if cfg.Global.CorpusPath == "" || cfg.Global.OutputDir == "" {
		fmt.Fprintln(os.Stderr, "train_classifiers: -corpus and -output (or a config file setting them) are required")
		os.Exit(1)
	}

	lg := log.NewDiscardLogger()
	if cfg.Global.LogFile != "" {
		var err error
		if lg, err = log.NewFile(cfg.Global.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "train_classifiers: opening log file: %v\n", err)
			os.Exit(1)
		}
		defer lg.Close()
	}

	registry, err := chart.NewRegistry(map[string]chart.LanguagePack{
		"en": en.Pack(),
		"es": es.Pack(),
	})
	if err != nil {
		lg.Fatalf("building registry: %v", err)
	}

	examples, err := loadCorpus(cfg.Global.CorpusPath)
	if err != nil {
		lg.Fatalf("loading corpus: %v", err)
	}

	languages := cfg.Global.Languages
	if len(languages) == 0 {
		languages = registry.Languages()
	}

	for _, lang := range languages {
		counts, err := tally(registry, lang, examples)
		if err != nil {
			lg.Errorf("tallying %s: %v", lang, err)
			continue
		}
		if err := writeCounts(cfg.Global.OutputDir, lang, counts); err != nil {
			lg.Errorf("writing %s: %v", lang, err)
			continue
		}
		lg.Infof("wrote %d rule counts for %s", len(counts), lang)
	}
}

func tally(registry *chart.Registry, lang string, examples []LabeledExample) (map[string]rank.RuleCounts, error) {
	rules, err := registry.RulesFor(lang, allKinds())
	if err != nil {
		return nil, err
	}
	locale := language.Make(lang)
	counts := make(map[string]rank.RuleCounts)

	for _, ex := range examples {
		if ex.Lang != lang {
			continue
		}
		nodes := chart.Run(ex.Text, rules, locale)
		for _, n := range nodes {
			c := counts[n.RuleName]
			c.Total++
			if n.Start == ex.Start && n.End == ex.End && n.Token.Kind.String() == ex.Dim {
				c.PositiveCount++
			} else {
				c.NegativeCount++
			}
			counts[n.RuleName] = c
		}
	}
	return counts, nil
}

func allKinds() []chart.Kind {
	return []chart.Kind{
		chart.KindRegexMatch, chart.KindNumeral, chart.KindOrdinal, chart.KindTimeGrain,
		chart.KindDuration, chart.KindTime, chart.KindTemperature, chart.KindMeasurement,
		chart.KindAmountOfMoney, chart.KindTemperatureInterval, chart.KindMeasurementInterval,
		chart.KindAmountOfMoneyInterval, chart.KindEmail, chart.KindPhoneNumber, chart.KindURL,
		chart.KindCreditCardNumber,
	}
}

func writeCounts(dir, lang string, counts map[string]rank.RuleCounts) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, lang+".json"), b, 0o644)
}
