package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToInternalCode(t *testing.T) {
	err := New("store.Get", "error.internal", stderrors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, err.GetCode())
	assert.Equal(t, "error.internal", err.Message())

	assert.Equal(t, http.StatusNotFound, err.Code(http.StatusNotFound).GetCode())
}

func TestTracePreservesMeta(t *testing.T) {
	base := New("store.Get.nil", "error.session.notfound", nil).Code(http.StatusNotFound)

	traced := Trace("logic.GetSessionInfo", base)
	assert.Equal(t, http.StatusNotFound, traced.GetCode())
	assert.Equal(t, "error.session.notfound", traced.Message())
	assert.Contains(t, traced.Error(), "store.Get.nil->logic.GetSessionInfo")
}

func TestTracePlainError(t *testing.T) {
	cause := stderrors.New("disk full")

	traced := Trace("logic.SendMessage", cause)
	assert.Equal(t, http.StatusInternalServerError, traced.GetCode())
	assert.Equal(t, "disk full", traced.Message())
	assert.Equal(t, cause, stderrors.Unwrap(traced))
}
