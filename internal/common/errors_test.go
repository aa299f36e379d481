package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
		other    error
	}{
		{name: "unauthenticated", sentinel: ErrUnauthenticated, other: ErrNotFound},
		{name: "not found", sentinel: ErrNotFound, other: ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("load goals: %w", tt.sentinel)

			assert.ErrorIs(t, err, tt.sentinel)
			assert.NotErrorIs(t, err, tt.other)
			assert.ErrorIs(t, fmt.Errorf("outer: %w", err), tt.sentinel)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrUnauthenticated, ErrNotFound))
	assert.NotEqual(t, ErrUnauthenticated.Error(), ErrNotFound.Error())
}
