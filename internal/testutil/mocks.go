package testutil

import (
	"vocabulaire/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordListRepository is a mock for WordListRepository
type MockWordListRepository struct {
	mock.Mock
}

func (m *MockWordListRepository) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockWordListRepository) ReadLines(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordListRepository) WriteLines(path string, lines []string) error {
	args := m.Called(path, lines)
	return args.Error(0)
}

// MockHistoryRepository is a mock for HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SaveRound(record domain.RoundRecord) (int64, error) {
	args := m.Called(record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) GetMostMissed(limit int) ([]domain.TermStat, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TermStat), args.Error(1)
}

func (m *MockHistoryRepository) CleanOldRounds(days int) error {
	args := m.Called(days)
	return args.Error(0)
}
