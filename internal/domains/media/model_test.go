package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"nature", "hiking"}, NormalizeTags([]string{" Nature", "HIKING", "nature", ""}))
	assert.Equal(t, []string{"one"}, NormalizeTags([]string{"one", "  one  "}))
	assert.Nil(t, NormalizeTags(nil))
	assert.Nil(t, NormalizeTags([]string{"", "   "}))
}

func TestTypeIsValid(t *testing.T) {
	assert.True(t, TypeImage.IsValid())
	assert.True(t, TypeVideo.IsValid())
	assert.False(t, Type("audio").IsValid())
	assert.False(t, Type("").IsValid())
}

func TestMediaCloneIsIndependent(t *testing.T) {
	desc := "original"
	item := Media{
		ID:          "1",
		Title:       "Title",
		Description: &desc,
		Tags:        []string{"a", "b"},
		CreatedAt:   time.Now(),
	}

	clone := item.Clone()
	clone.Tags[0] = "changed"
	*clone.Description = "changed"

	assert.Equal(t, "a", item.Tags[0])
	assert.Equal(t, "original", *item.Description)
}
