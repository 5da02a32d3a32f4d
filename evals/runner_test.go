package evals

import (
	"path/filepath"
	"strings"
	"testing"
)

// MockToolSelector implements ToolSelector for testing
type MockToolSelector struct {
	// Responses maps input strings to tool selections
	Responses map[string]struct {
		Tool string
		Args map[string]interface{}
	}
	// DefaultTool is returned if input isn't in Responses
	DefaultTool string
}

func (m *MockToolSelector) SelectTool(input string) (string, map[string]interface{}, error) {
	if resp, ok := m.Responses[input]; ok {
		return resp.Tool, resp.Args, nil
	}
	return m.DefaultTool, nil, nil
}

// PerfectToolSelector returns the expected tool for each test
type PerfectToolSelector struct {
	suite *ToolSelectionSuite
}

func (p *PerfectToolSelector) SelectTool(input string) (string, map[string]interface{}, error) {
	for _, test := range p.suite.Tests {
		if test.Input == input {
			return test.ExpectedTool, test.ExpectedArgs, nil
		}
	}
	return "", nil, nil
}

func TestLoadToolSelectionSuite(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(".", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load tool selection suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}

	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}

	for _, test := range suite.Tests {
		if test.ID == "" {
			t.Error("Test ID should not be empty")
		}
		if test.Input == "" {
			t.Errorf("Test %s input should not be empty", test.ID)
		}
		if !strings.HasPrefix(test.ExpectedTool, "firefly_") {
			t.Errorf("Test %s expects tool %q without the firefly_ prefix", test.ID, test.ExpectedTool)
		}
	}
}

func TestLoadConfusionPairSuite(t *testing.T) {
	suite, err := LoadConfusionPairSuite(filepath.Join(".", "confusion_pairs.json"))
	if err != nil {
		t.Fatalf("Failed to load confusion pair suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}

	if len(suite.Pairs) == 0 {
		t.Fatal("Suite should have confusion pairs")
	}

	for _, pair := range suite.Pairs {
		if pair.ID == "" {
			t.Error("Pair ID should not be empty")
		}
		if len(pair.Tools) < 2 {
			t.Errorf("Pair %s should have at least 2 tools", pair.ID)
		}
		if len(pair.Tests) == 0 {
			t.Errorf("Pair %s should have tests", pair.ID)
		}
	}
}

func TestLoadArgumentSuite(t *testing.T) {
	suite, err := LoadArgumentSuite(filepath.Join(".", "argument_correctness.json"))
	if err != nil {
		t.Fatalf("Failed to load argument suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}

	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}

	for _, test := range suite.Tests {
		if test.ID == "" {
			t.Error("Test ID should not be empty")
		}
		if test.Tool == "" {
			t.Errorf("Test %s tool should not be empty", test.ID)
		}
		if test.Input == "" {
			t.Errorf("Test %s input should not be empty", test.ID)
		}
	}

	if suite.ValidationRules.AmountFormat == "" {
		t.Error("Amount format rule should be documented")
	}
	if suite.ValidationRules.ConfirmDefault == "" {
		t.Error("Confirm default rule should be documented")
	}
}

func TestEvaluateToolSelection(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(".", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	// A perfect selector must score 100%
	perfectSelector := &PerfectToolSelector{suite: suite}
	metrics, results := EvaluateToolSelection(suite, perfectSelector)

	if metrics.TotalTests != len(suite.Tests) {
		t.Errorf("Total tests: expected %d, got %d", len(suite.Tests), metrics.TotalTests)
	}

	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should have 100%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}

	if len(results) != len(suite.Tests) {
		t.Errorf("Should have result for each test")
	}

	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test %s should pass with perfect selector", result.TestID)
		}
	}
}

func TestEvaluateToolSelectionWithWrongAnswers(t *testing.T) {
	suite := &ToolSelectionSuite{
		Name: "Test Suite",
		Tests: []ToolSelectionTest{
			{
				ID:           "test-001",
				Category:     "search",
				Input:        "find transactions at the bakery",
				ExpectedTool: "firefly_search_all",
				ExpectedArgs: map[string]interface{}{"query": "bakery"},
				NotTools:     []string{"firefly_list_transactions"},
			},
			{
				ID:           "test-002",
				Category:     "accounts",
				Input:        "show account 5",
				ExpectedTool: "firefly_get_account",
				ExpectedArgs: map[string]interface{}{"account_id": "5"},
			},
		},
	}

	// Always answers with an unrelated tool
	wrongSelector := &MockToolSelector{
		DefaultTool: "firefly_delete_account",
	}

	metrics, results := EvaluateToolSelection(suite, wrongSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Wrong selector should have 0 passed tests, got %d", metrics.PassedTests)
	}

	if metrics.FailedTests != 2 {
		t.Errorf("Wrong selector should have 2 failed tests, got %d", metrics.FailedTests)
	}

	if metrics.Accuracy != 0 {
		t.Errorf("Wrong selector should have 0%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}

	for _, result := range results {
		if result.Passed {
			t.Errorf("Test %s should not pass with wrong selector", result.TestID)
		}
		if len(result.Errors) == 0 {
			t.Errorf("Test %s should have errors", result.TestID)
		}
	}
}

func TestEvaluateConfusionPairs(t *testing.T) {
	suite := &ConfusionPairSuite{
		Name: "Test Confusion Pairs",
		Pairs: []ConfusionPair{
			{
				ID:             "withdrawal-vs-transfer",
				Tools:          []string{"firefly_create_withdrawal", "firefly_create_transfer"},
				Disambiguation: "withdrawal = money leaving to an expense, transfer = between own accounts",
				Tests: []ConfusionPairTest{
					{
						Input:    "paid 30 for dinner from checking",
						Expected: "firefly_create_withdrawal",
						Reason:   "destination is an expense, not an owned account",
					},
					{
						Input:    "moved 30 from checking to savings",
						Expected: "firefly_create_transfer",
						Reason:   "both accounts are owned",
					},
				},
			},
		},
	}

	perfectSelector := &MockToolSelector{
		Responses: map[string]struct {
			Tool string
			Args map[string]interface{}
		}{
			"paid 30 for dinner from checking": {
				Tool: "firefly_create_withdrawal",
				Args: map[string]interface{}{"amount": "30", "description": "dinner"},
			},
			"moved 30 from checking to savings": {
				Tool: "firefly_create_transfer",
				Args: map[string]interface{}{"amount": "30"},
			},
		},
	}

	metrics, results := EvaluateConfusionPairs(suite, perfectSelector)

	if metrics.TotalTests != 2 {
		t.Errorf("Expected 2 tests, got %d", metrics.TotalTests)
	}

	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should have 100%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}

	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test should pass: %s", result.TestInput)
		}
	}
}

func TestEvaluateConfusionPairsWithMixups(t *testing.T) {
	suite := &ConfusionPairSuite{
		Name: "Test Confusion Pairs",
		Pairs: []ConfusionPair{
			{
				ID:    "destroy-vs-purge",
				Tools: []string{"firefly_destroy_data", "firefly_purge_data"},
				Tests: []ConfusionPairTest{
					{
						Input:    "wipe my deleted records for good",
						Expected: "firefly_purge_data",
						Reason:   "purge targets soft-deleted records",
					},
				},
			},
		},
	}

	confusedSelector := &MockToolSelector{DefaultTool: "firefly_destroy_data"}

	metrics, results := EvaluateConfusionPairs(suite, confusedSelector)

	if metrics.FailedTests != 1 {
		t.Errorf("Expected 1 failed test, got %d", metrics.FailedTests)
	}
	if len(results) != 1 || results[0].Passed {
		t.Error("Mixed-up selection should fail")
	}
	if m := metrics.ByTool["firefly_purge_data"]; m == nil || m.FalseNegatives != 1 {
		t.Error("Expected tool should record a false negative")
	}
	if m := metrics.ByTool["firefly_destroy_data"]; m == nil || m.FalsePositives != 1 {
		t.Error("Selected tool should record a false positive")
	}
}

func TestEvaluateArguments(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Arguments",
		Tests: []ArgumentTest{
			{
				ID:           "args-001",
				Tool:         "firefly_list_transactions",
				Input:        "show up to 20 withdrawals",
				RequiredArgs: []string{"transaction_type"},
				ExpectedArgs: map[string]interface{}{
					"transaction_type": "withdrawal",
					"limit":            float64(20), // JSON numbers are float64
				},
				ForbiddenArgs: []string{"start_date"},
			},
		},
	}

	correctSelector := &MockToolSelector{
		Responses: map[string]struct {
			Tool string
			Args map[string]interface{}
		}{
			"show up to 20 withdrawals": {
				Tool: "firefly_list_transactions",
				Args: map[string]interface{}{
					"transaction_type": "withdrawal",
					"limit":            float64(20),
				},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, correctSelector)

	if metrics.TotalTests != 1 {
		t.Errorf("Expected 1 test, got %d", metrics.TotalTests)
	}

	if metrics.PassedTests != 1 {
		t.Errorf("Expected 1 passed test, got %d", metrics.PassedTests)
	}

	if len(results) > 0 && !results[0].Passed {
		t.Errorf("Test should pass: missing=%v, wrong=%v, forbidden=%v",
			results[0].MissingArgs, results[0].WrongArgs, results[0].ForbiddenHit)
	}
}

func TestEvaluateArgumentsWithForbidden(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Forbidden Args",
		Tests: []ArgumentTest{
			{
				ID:            "args-001",
				Tool:          "firefly_delete_budget",
				Input:         "delete budget 7",
				RequiredArgs:  []string{"budget_id"},
				ExpectedArgs:  map[string]interface{}{"budget_id": "7"},
				ForbiddenArgs: []string{"confirm"},
			},
		},
	}

	// Selector that assumes confirm=true unprompted
	badSelector := &MockToolSelector{
		Responses: map[string]struct {
			Tool string
			Args map[string]interface{}
		}{
			"delete budget 7": {
				Tool: "firefly_delete_budget",
				Args: map[string]interface{}{
					"budget_id": "7",
					"confirm":   true,
				},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, badSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Expected 0 passed tests (forbidden arg used), got %d", metrics.PassedTests)
	}

	if len(results) > 0 && len(results[0].ForbiddenHit) == 0 {
		t.Error("Should flag forbidden arg usage")
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected interface{}
		actual   interface{}
		want     bool
	}{
		{"equal strings", "12.50", "12.50", true},
		{"different strings", "12.50", "12.00", false},
		{"int vs float64", 20, float64(20), true},
		{"equal slices", []string{"food", "weekly"}, []string{"food", "weekly"}, true},
		{"different slices", []string{"food"}, []string{"rent"}, false},
		{"nil values", nil, nil, true},
		{"nil vs value", nil, "test", false},
		{"equal bools", true, true, true},
		{"different bools", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareValues(tt.expected, tt.actual)
			if got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &EvalMetrics{
		TotalTests:  10,
		PassedTests: 8,
		FailedTests: 2,
		Accuracy:    0.8,
		ByCategory: map[string]*CategoryMetrics{
			"transactions": {Total: 5, Passed: 4, Failed: 1},
			"accounts":     {Total: 5, Passed: 4, Failed: 1},
		},
		FailedDetails: []string{
			"[test-1] input: error",
			"[test-2] input: error",
		},
	}

	output := FormatMetrics(metrics, "Test Suite")

	if output == "" {
		t.Fatal("FormatMetrics should return non-empty string")
	}

	if !strings.Contains(output, "80") {
		t.Error("Should show accuracy percentage")
	}
	if !strings.Contains(output, "transactions") {
		t.Error("Should show category breakdown")
	}
	if !strings.Contains(output, "Failed Tests") {
		t.Error("Should show failed tests section")
	}
}

func TestLoadAllEvals(t *testing.T) {
	toolSelection, confusionPairs, arguments, err := LoadAllEvals(".")
	if err != nil {
		t.Fatalf("Failed to load all evals: %v", err)
	}

	if toolSelection == nil {
		t.Error("Tool selection suite should not be nil")
	}
	if confusionPairs == nil {
		t.Error("Confusion pairs suite should not be nil")
	}
	if arguments == nil {
		t.Error("Arguments suite should not be nil")
	}

	total := len(toolSelection.Tests)
	for _, pair := range confusionPairs.Pairs {
		total += len(pair.Tests)
	}
	total += len(arguments.Tests)

	t.Logf("Loaded %d total evaluation tests", total)
}
