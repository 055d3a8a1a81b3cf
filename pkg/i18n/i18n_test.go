package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLang(t *testing.T) {
	l := NewLocalizer("zh-CN", "en")

	assert.Equal(t, "Passcode cannot be empty", l.Get("en", ERROR_EMPTY_PASSCODE))
	assert.Equal(t, "口令不能为空", l.Get("zh-CN", ERROR_EMPTY_PASSCODE))

	// unknown language falls back to the raw id
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
}
