package urltemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandReplacesAllPlaceholders(t *testing.T) {
	got, err := Expand("/api/v1/tp-etl/detail/{user_id}/{course_id}/summary", map[string]string{
		"user_id":   "42",
		"course_id": "7",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/tp-etl/detail/42/7/summary", got)
}

func TestExpandEscapesValues(t *testing.T) {
	got, err := Expand("/files/{name}", map[string]string{"name": "a b/c"})
	require.NoError(t, err)
	assert.Equal(t, "/files/a%20b%2Fc", got)
}

func TestExpandWithoutPlaceholders(t *testing.T) {
	got, err := Expand("/api/etl/status", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/etl/status", got)
}

func TestExpandErrors(t *testing.T) {
	cases := []struct {
		name   string
		tmpl   string
		params map[string]string
		want   error
	}{
		{"missing param", "/x/{user_id}/{course_id}", map[string]string{"user_id": "1"}, ErrMissingParam},
		{"unused param", "/x/{user_id}", map[string]string{"user_id": "1", "userId": "2"}, ErrUnusedParam},
		{"unterminated", "/x/{user_id", map[string]string{"user_id": "1"}, ErrMalformed},
		{"nested", "/x/{user_{id}}", map[string]string{"user_id": "1"}, ErrMalformed},
		{"stray close", "/x/user_id}", nil, ErrMalformed},
		{"empty", "/x/{}", nil, ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Expand(tc.tmpl, tc.params)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
