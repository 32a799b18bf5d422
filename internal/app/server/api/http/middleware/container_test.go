package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_GetAllAndClear(t *testing.T) {
	mc := NewContainer()
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }

	mc.Add(noop, noop)
	first := mc.GetAllAndClear()
	mc.Add(noop)
	second := mc.GetAllAndClear()

	assert.Len(t, first, 2)
	assert.Len(t, second, 1)
	assert.Empty(t, mc.GetAllAndClear())
}
