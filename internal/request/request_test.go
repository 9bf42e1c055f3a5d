package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillapp/quill-server/internal/errors"
)

func TestRun_ShortCircuitsAtFirstFailure(t *testing.T) {
	var calls []string
	record := func(name string, err error) Guard {
		return func(context.Context, *Context) error {
			calls = append(calls, name)
			return err
		}
	}

	err := Run(context.Background(), &Context{},
		record("first", nil),
		record("second", errors.InvalidInput("boom")),
		record("third", nil),
	)

	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestRun_NoGuards(t *testing.T) {
	assert.NoError(t, Run(context.Background(), &Context{}))
}
