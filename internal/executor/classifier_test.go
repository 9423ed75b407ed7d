package executor

import (
	"testing"

	"github.com/aleister1102/retrier/internal/config"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name      string
		retryOn   []int
		successOn []int
		exitCode  int
		expected  bool
	}{
		{"Default policy accepts zero", nil, nil, 0, true},
		{"Default policy rejects non-zero", nil, nil, 1, false},
		{"Default policy rejects signal codes", nil, nil, -15, false},
		{"success_on accepts listed code", nil, []int{0, 2}, 2, true},
		{"success_on rejects unlisted code", nil, []int{0, 2}, 1, false},
		{"success_on can reject zero", nil, []int{2}, 0, false},
		{"retry_on rejects listed code", []int{1, 75}, nil, 75, false},
		{"retry_on accepts unlisted code", []int{1, 75}, nil, 3, true},
		{"retry_on accepts zero when unlisted", []int{1}, nil, 0, true},
		{"retry_on wins over success_on", []int{2}, []int{2}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewClassifier(tt.retryOn, tt.successOn)
			result := classifier.Classify(tt.exitCode)
			if result != tt.expected {
				t.Errorf("Classify(%d) = %v, want %v", tt.exitCode, result, tt.expected)
			}
		})
	}
}

func TestNewClassifierFromConfig(t *testing.T) {
	cfg := config.ExecutorConfig{SuccessOnCodes: "0, 2"}
	classifier, err := NewClassifierFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewClassifierFromConfig() error = %v", err)
	}
	if !classifier.Classify(2) {
		t.Error("Classify(2) = false, want true")
	}
	if classifier.Classify(1) {
		t.Error("Classify(1) = true, want false")
	}
}

func TestNewClassifierFromConfig_InvalidList(t *testing.T) {
	cfg := config.ExecutorConfig{RetryOnCodes: "1,x"}
	if _, err := NewClassifierFromConfig(cfg); err == nil {
		t.Error("NewClassifierFromConfig() expected error for non-numeric code")
	}
}
