package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(context.Context) error {
	f.calls++
	return f.err
}

func TestInvalidateCatalogHandler(t *testing.T) {
	inv := &fakeInvalidator{}
	h := NewInvalidateCatalogHandler(inv)

	assert.NoError(t, h.Handle(context.Background(), InvalidateCatalogCommand{ProductID: "p1", Change: "updated"}))
	assert.Equal(t, 1, inv.calls)

	inv.err = errors.New("redis down")
	err := h.Handle(context.Background(), InvalidateCatalogCommand{})
	assert.ErrorIs(t, err, inv.err)
}
