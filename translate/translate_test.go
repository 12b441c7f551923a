package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("line 3 '0x10' is not a word", From("line %d '%v' is not a word", 3, "0x10"))
	assert.Equal("1,234 words", From("%d words", 1234))

	assert.Error(SetLanguage("not a language!"))
	assert.Equal("1,234 words", From("%d words", 1234))
}
