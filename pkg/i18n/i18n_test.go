package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {
	Init()

	assert.Equal(t, "The box still contains items", Localize("box_not_empty", "x", nil, "en"))
	assert.Equal(t, "Lo scatolo contiene ancora articoli", Localize("box_not_empty", "x", nil, "it-IT", "en"))
	assert.Equal(t, "The request is invalid: bad id", Localize("validation", "x", map[string]interface{}{"Detail": "bad id"}, "de"))
	assert.Equal(t, "fallback", Localize("no_such_message", "fallback", nil, "en"))
}
