package util

import (
	"testing"
	"time"

	"adaptive_learning_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	student := &model.Student{ID: 7, Name: "alice"}

	token, err := GenerateJWT(student, true, "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.StudentID)
	assert.Equal(t, "alice", claims.Name)
	assert.True(t, claims.Admin)
}

func TestParseJWTWrongSecret(t *testing.T) {
	student := &model.Student{ID: 7, Name: "alice"}

	token, err := GenerateJWT(student, false, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	student := &model.Student{ID: 7, Name: "alice"}

	token, err := GenerateJWT(student, false, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
