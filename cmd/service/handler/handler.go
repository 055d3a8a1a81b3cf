package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huddle-ai/huddle-ai/app/core"
	"github.com/huddle-ai/huddle-ai/pkg/errors"
	"github.com/huddle-ai/huddle-ai/pkg/i18n"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

// paramID parses a numeric path parameter. Ids are snowflake int64 values
// rendered as decimal strings on the wire.
func paramID(c *gin.Context, name string) (int64, error) {
	raw, exist := c.Params.Get(name)
	if !exist || raw == "" {
		return 0, errors.New("api.paramID."+name+".nil", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("api.paramID."+name, i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return id, nil
}
