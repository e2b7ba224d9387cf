package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/domain"
)

func TestDecodeBatch(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIDs   []int64
		wantError string
	}{
		{
			name:    "json array",
			input:   `[{"activity_id":1,"event_type":"open"},{"activity_id":2,"event_type":"close"}]`,
			wantIDs: []int64{1, 2},
		},
		{
			name:    "json lines",
			input:   "{\"activity_id\":3,\"event_type\":\"open\"}\n{\"activity_id\":4,\"event_type\":\"open\"}\n",
			wantIDs: []int64{3, 4},
		},
		{
			name:    "empty array",
			input:   " [] ",
			wantIDs: []int64{},
		},
		{
			name:      "blank input",
			input:     "  \n ",
			wantError: "empty input",
		},
		{
			name:      "broken array",
			input:     `[{"activity_id":1}`,
			wantError: "malformed array",
		},
		{
			name:      "broken second line",
			input:     "{\"activity_id\":1}\n{\"activity_id\":",
			wantError: "malformed record 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeBatch[EventInput](strings.NewReader(tt.input))

			if tt.wantError != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ActivityID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
