package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   TaskStatus
		wantOK bool
	}{
		{"PENDING", TaskStatusPending, true},
		{"in_progress", TaskStatusInProgress, true},
		{" Completed ", TaskStatusCompleted, true},
		{"cancelled", TaskStatusCancelled, true},
		{"overdue", TaskStatusOverdue, true},
		{"done", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseTaskStatus(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
