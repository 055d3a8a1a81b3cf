package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huddle-ai/huddle-ai/pkg/errors"
	"github.com/huddle-ai/huddle-ai/pkg/i18n"
	"github.com/huddle-ai/huddle-ai/pkg/utils"
)

func ProvideResponseLocalizer(l i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("i18n", l)
	}
}

func InjectResponseLocalizer(c *gin.Context) i18n.Localizer {
	return c.MustGet("i18n").(i18n.Localizer)
}

const (
	ResponseKey = "response_key"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data"`
}

type Meta struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func GetLangFromRequestOrDefault(c *gin.Context) string {
	lang := c.Request.Header.Get("Accept-Language")
	if lang == "zh" {
		lang = "zh-CN"
	}
	if i18n.ALLOW_LANG[lang] {
		return lang
	}
	return i18n.DEFAULT_LANG
}

// APIError finishes the request with a localized error envelope.
func APIError(c *gin.Context, err error) {
	APIErrorWithData(c, err, nil)
}

// APIErrorWithData carries a degraded payload alongside the error meta, for
// read paths that answer with empty/placeholder results instead of nothing.
func APIErrorWithData(c *gin.Context, err error, data interface{}) {
	c.Abort()
	l := InjectResponseLocalizer(c)

	res := c.MustGet(ResponseKey).(*Response)
	var httpStatus int
	if cerrptr, ok := err.(*errors.CustomizedError); !ok {
		res.Meta.Code = http.StatusInternalServerError
		res.Meta.Message = err.Error()
		httpStatus = res.Meta.Code
	} else {
		res.Meta.Code = cerrptr.GetCode()
		res.Meta.Message = l.Get(GetLangFromRequestOrDefault(c), cerrptr.Message())
		httpStatus = cerrptr.GetCode()
	}
	res.Data = data

	c.JSON(httpStatus, res)
	printErrorLog(c, res, err)
}

func printErrorLog(c *gin.Context, res *Response, err error) {
	slog.Error("response error",
		slog.String("request_uri", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.Int("code", res.Meta.Code),
		slog.String("request_id", res.Meta.RequestID),
		slog.String("error", err.Error()),
	)
}

func printSuccessLog(c *gin.Context, res *Response) {
	slog.Info("request success",
		slog.String("request_uri", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.String("request_id", res.Meta.RequestID),
		slog.String("params", c.Request.URL.Query().Encode()),
	)
}

func APISuccess(c *gin.Context, response interface{}) {
	c.Abort()
	res := c.MustGet(ResponseKey).(*Response)
	if response != nil {
		res.Data = response
	}
	c.JSON(http.StatusOK, res)
	printSuccessLog(c, res)
}

// NewResponse seeds the per-request envelope with a random request id.
func NewResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := &Response{
			Meta: Meta{
				RequestID: utils.GenRandomID(),
			},
		}
		c.Set(ResponseKey, resp)
	}
}
