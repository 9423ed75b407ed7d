package executor

import (
	"github.com/aleister1102/retrier/internal/config"
)

// Classifier decides whether an exit code counts as success. Exactly one
// policy applies, in priority order: retry_on (success unless the code is
// listed), success_on (success only when the code is listed), and the
// default zero-is-success. When both code lists are configured, retry_on
// wins.
type Classifier struct {
	retryOn   map[int]bool
	successOn map[int]bool
}

// NewClassifier creates a classifier from explicit code lists
func NewClassifier(retryOn, successOn []int) *Classifier {
	classifier := &Classifier{
		retryOn:   make(map[int]bool),
		successOn: make(map[int]bool),
	}
	for _, code := range retryOn {
		classifier.retryOn[code] = true
	}
	for _, code := range successOn {
		classifier.successOn[code] = true
	}
	return classifier
}

// NewClassifierFromConfig parses the configured exit code lists
func NewClassifierFromConfig(cfg config.ExecutorConfig) (*Classifier, error) {
	retryOn, err := config.ParseExitCodeList(cfg.RetryOnCodes)
	if err != nil {
		return nil, err
	}
	successOn, err := config.ParseExitCodeList(cfg.SuccessOnCodes)
	if err != nil {
		return nil, err
	}
	return NewClassifier(retryOn, successOn), nil
}

// Classify reports whether the exit code terminates the retry loop as a
// success.
func (c *Classifier) Classify(exitCode int) bool {
	if len(c.retryOn) > 0 {
		return !c.retryOn[exitCode]
	}
	if len(c.successOn) > 0 {
		return c.successOn[exitCode]
	}
	return exitCode == 0
}
