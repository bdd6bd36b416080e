package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := &pq.Error{Code: CodeUniqueViolation, Constraint: "full_orders_slot_hall_key"}
	wrapped := fmt.Errorf("insert: %w", unique)

	assert.True(t, IsUniqueViolation(wrapped))
	assert.Equal(t, "full_orders_slot_hall_key", Constraint(wrapped))
	assert.False(t, IsRetryable(wrapped))

	assert.True(t, IsRetryable(&pq.Error{Code: CodeSerializationFailure}))
	assert.True(t, IsRetryable(&pq.Error{Code: CodeDeadlockDetected}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: CodeForeignKeyViolation}))
	assert.True(t, IsCheckViolation(&pq.Error{Code: CodeCheckViolation}))

	assert.Empty(t, Code(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}
