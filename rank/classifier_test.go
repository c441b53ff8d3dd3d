package rank

import "testing"

func TestLogOddsFavorsPositiveCounts(t *testing.T) {
	table := NewTable(map[string]RuleCounts{
		"good": {PositiveCount: 10, NegativeCount: 0, Total: 10},
		"bad":  {PositiveCount: 0, NegativeCount: 10, Total: 10},
	})
	if table.Score("good") <= table.Score("bad") {
		t.Errorf("good score %v should exceed bad score %v", table.Score("good"), table.Score("bad"))
	}
}

func TestScoreFallsBackToNeutralPriorForUnseenRule(t *testing.T) {
	table := NewTable(map[string]RuleCounts{
		"seen": {PositiveCount: 5, NegativeCount: 1, Total: 6},
	})
	if got := table.Score("never-trained"); got != NeutralPrior {
		t.Errorf("got %v, want NeutralPrior", got)
	}
}

func TestScoreOnNilTableIsNeutral(t *testing.T) {
	var table *Table
	if got := table.Score("anything"); got != NeutralPrior {
		t.Errorf("got %v, want NeutralPrior", got)
	}
}

func TestLoadTableMissingFileFallsBackToEmpty(t *testing.T) {
	table, err := LoadTable("/nonexistent/path/classifier.json")
	if err != nil {
		t.Fatalf("expected a missing file to not be fatal, got %v", err)
	}
	if got := table.Score("anything"); got != NeutralPrior {
		t.Errorf("got %v, want NeutralPrior", got)
	}
}
