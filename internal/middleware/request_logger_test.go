package middleware

import (
	"testing"

	"trivia-api/internal/util"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDFields(t *testing.T) {
	generated := util.NewULID()

	assert.Equal(t, []zap.Field{zap.String("request_id", generated)},
		requestIDFields(generated, false))

	assert.Equal(t, []zap.Field{
		zap.String("request_id", generated),
		zap.Bool("request_id_ulid", true),
	}, requestIDFields(generated, true))

	assert.Equal(t, []zap.Field{
		zap.String("request_id", "client-supplied"),
		zap.Bool("request_id_ulid", false),
	}, requestIDFields("client-supplied", true))
}
