package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/sync/{direction}", func(r chi.Router) {
			r.Post("/full", h.fullSync)
			r.Post("/tick", h.tick)
			r.Get("/", h.batchStatus)
			r.Delete("/", h.cancelBatch)
		})

		r.Route("/groups/{groupID}", func(r chi.Router) {
			r.Post("/channel", h.linkGroupToNewChannel)
			r.Delete("/channel", h.unlinkGroup)
			r.Put("/contacts/{contactID}", h.addContactToChannel)
			r.Delete("/contacts/{contactID}", h.removeContactFromChannel)
		})

		r.Post("/channels/{channelID}/group", h.linkChannelToNewGroup)

		r.Delete("/contacts/{contactID}/chat-account", h.deactivateChatAccount)
	})

	return router
}
