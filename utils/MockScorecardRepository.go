package utils

import (
	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// MockScorecardRepository is an in-memory repository for tests.
type MockScorecardRepository struct {
	sets []core.ScorecardSet
}

func (m *MockScorecardRepository) Store(results []core.RuleResult) error {
	m.sets = append(m.sets, core.ScorecardSet{Results: results})
	return nil
}

func (m *MockScorecardRepository) Clear() error {
	m.sets = nil
	return nil
}

func (m *MockScorecardRepository) NewIterator() core.ScorecardIterator {
	return &mockScorecardIterator{sets: m.sets}
}

func (m *MockScorecardRepository) Close() error {
	return nil
}

type mockScorecardIterator struct {
	sets    []core.ScorecardSet
	current int
}

func (it *mockScorecardIterator) HasNext() bool {
	return it.current < len(it.sets)
}

func (it *mockScorecardIterator) Next() (core.ScorecardSet, error) {
	set := it.sets[it.current]
	it.current++
	return set, nil
}

func (it *mockScorecardIterator) Reset() error {
	it.current = 0
	return nil
}
