package usecase_test

import (
	"context"
	"sync"

	"github.com/DylansGit/ClipSage/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// countingMetrics records every observation for assertions.
type countingMetrics struct {
	mu         sync.Mutex
	captures   map[string]int
	failures   map[string]int
	duplicates int
	polls      int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{captures: map[string]int{}, failures: map[string]int{}}
}

func (m *countingMetrics) ObserveCapture(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captures[kind]++
}

func (m *countingMetrics) ObserveDuplicate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duplicates++
}

func (m *countingMetrics) ObserveFailure(stage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[stage]++
}

func (m *countingMetrics) ObservePoll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls++
}
