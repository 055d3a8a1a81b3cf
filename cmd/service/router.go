package service

import (
	"github.com/huddle-ai/huddle-ai/app/core"
	"github.com/huddle-ai/huddle-ai/app/response"
	"github.com/huddle-ai/huddle-ai/cmd/service/handler"
	"github.com/huddle-ai/huddle-ai/cmd/service/middleware"
	"github.com/huddle-ai/huddle-ai/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(middleware.Recovery(), middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors, middleware.ApiErrorMetrics(s.Core))

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		session := apiV1.Group("/session")
		{
			session.POST("/join", s.JoinSession)
			session.GET("/:session/info", s.GetSessionInfo)
			session.GET("/:session/chats", s.ListChats)
		}

		chat := apiV1.Group("/chat")
		{
			chat.POST("", s.CreateChat)
			chat.GET("/:chat/messages", s.ListMessages)
			chat.GET("/:chat/poll", s.PollMessages)
			chat.POST("/:chat/message", s.SendMessage)
		}
	}
}
