package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestCheck_ValidValue(t *testing.T) {
	require.NoError(t, Check(sample{Name: "Ana", Email: "ana@x.com"}))
}

func TestCheck_ReturnsFirstViolation(t *testing.T) {
	err := Check(sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
}

func TestProblems_ReturnsAllViolations(t *testing.T) {
	problems := Problems(sample{Email: "not-an-email"})
	require.Len(t, problems, 2)
}

func TestProblems_EmptyForValidValue(t *testing.T) {
	assert.Empty(t, Problems(sample{Name: "Ana", Email: "ana@x.com"}))
}
