package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateOffer(c *ginext.Context)
	ListOpenOffers(c *ginext.Context)
	ListMyOffers(c *ginext.Context)
	CancelOffer(c *ginext.Context)
	CreateRequest(c *ginext.Context)
	ListRequests(c *ginext.Context)
	AcceptRequest(c *ginext.Context)
	DeclineRequest(c *ginext.Context)
	ListSessions(c *ginext.Context)
	CompleteSession(c *ginext.Context)
	CancelSession(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Offers
		api.POST("/offers", h.CreateOffer)
		api.GET("/offers", h.ListOpenOffers)
		api.GET("/offers/my", h.ListMyOffers)
		api.POST("/offers/:id/cancel", h.CancelOffer)

		// Requests
		api.POST("/offers/:id/requests", h.CreateRequest)
		api.GET("/requests", h.ListRequests)
		api.POST("/requests/:id/accept", h.AcceptRequest)
		api.POST("/requests/:id/decline", h.DeclineRequest)

		// Sessions
		api.GET("/sessions", h.ListSessions)
		api.POST("/sessions/:id/complete", h.CompleteSession)
		api.POST("/sessions/:id/cancel", h.CancelSession)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
