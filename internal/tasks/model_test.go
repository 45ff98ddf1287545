package tasks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusTodo.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, Status("blocked").Valid())
	assert.False(t, Status("").Valid())
}

func TestTaskPatch_DistinguishesAbsentAndNull(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		title    Optional[string]
		desc     Optional[string]
		status   Optional[Status]
	}{
		{
			name: "empty body",
			body: `{}`,
		},
		{
			name:   "status only",
			body:   `{"status":"done"}`,
			status: Some(StatusDone),
		},
		{
			name:  "null description",
			body:  `{"title":"x","description":null}`,
			title: Some("x"),
			desc:  Optional[string]{Set: true, Null: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p TaskPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.title, p.Title)
			assert.Equal(t, tt.desc, p.Description)
			assert.Equal(t, tt.status, p.Status)
		})
	}
}

func TestTaskJSON_NullableFields(t *testing.T) {
	data, err := json.Marshal(Task{ID: 1, Title: "a", Status: StatusTodo})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"description":null`)
	assert.Contains(t, string(data), `"updated_at":null`)
}
