package service

import (
	"fmt"
	"path/filepath"
	"testing"

	"vocabulaire/internal/domain"
	"vocabulaire/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoaderService_ResolvePath(t *testing.T) {
	absWords, _ := filepath.Abs("words.voc")
	absMissing, _ := filepath.Abs("missing.voc")

	tests := []struct {
		name          string
		candidate     string
		exists        map[string]bool
		expectedPath  string
		expectedError error
	}{
		{
			name:          "empty input",
			candidate:     "   ",
			expectedError: domain.ErrFileNotFound,
		},
		{
			name:          "wrong extension",
			candidate:     "words.txt",
			expectedError: domain.ErrInvalidExtension,
		},
		{
			name:          "missing file",
			candidate:     "missing.voc",
			exists:        map[string]bool{absMissing: false},
			expectedError: domain.ErrFileNotFound,
		},
		{
			name:         "existing file",
			candidate:    " words.voc ",
			exists:       map[string]bool{absWords: true},
			expectedPath: absWords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordListRepository)
			for path, ok := range tt.exists {
				mockRepo.On("Exists", path).Return(ok)
			}

			service := NewLoaderService(mockRepo, ".voc", testutil.NewTestLogger())

			path, err := service.ResolvePath(tt.candidate)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, path)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPath, path)
			}

			mockRepo.AssertExpectations(t)
			if tt.exists == nil {
				mockRepo.AssertNotCalled(t, "Exists", mock.Anything)
			}
		})
	}
}

func TestLoaderService_Load(t *testing.T) {
	tests := []struct {
		name          string
		mockLines     []string
		mockError     error
		expectedError bool
	}{
		{
			name:      "lines read",
			mockLines: []string{"chat, cat", "chien, dog"},
		},
		{
			name:          "read error",
			mockError:     fmt.Errorf("permission denied"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordListRepository)
			if tt.mockError != nil {
				mockRepo.On("ReadLines", "/lists/french.voc").Return(nil, tt.mockError)
			} else {
				mockRepo.On("ReadLines", "/lists/french.voc").Return(tt.mockLines, nil)
			}

			service := NewLoaderService(mockRepo, ".voc", testutil.NewTestLogger())

			lines, err := service.Load("/lists/french.voc")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, lines)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockLines, lines)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
