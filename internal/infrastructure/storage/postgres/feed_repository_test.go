package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uteqportal/internal/domain/feed"
)

func TestToTags(t *testing.T) {
	assert.Equal(t, []feed.Tag{{Value: "a"}, {Value: "b"}}, toTags([]string{"a", "b"}))
	assert.Equal(t, []feed.Tag{}, toTags(nil))
}
