package main

import (
	"os"

	json "github.com/goccy/go-json"
)

// LabeledExample is one line of a training corpus: a text span hand-labeled
// with the dimension it should resolve to (spec §6's classifier file
// format is the *output* of this tool; this is its input).
type LabeledExample struct {
	Lang  string `json:"lang"`
	Text  string `json:"text"`
	Dim   string `json:"dim"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func loadCorpus(path string) ([]LabeledExample, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var examples []LabeledExample
	if err := json.Unmarshal(b, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}
