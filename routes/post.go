package routes

import (
	"github.com/gorilla/mux"

	"masterboxer.com/project-micro-social/handlers"
	"masterboxer.com/project-micro-social/services"
)

func CreatePostRoutes(social *services.Social, sessions *services.Sessions, router *mux.Router) *mux.Router {
	requireSession := handlers.RequireSession(sessions)
	optionalSession := handlers.OptionalSession(sessions)

	router.Handle("/posts", requireSession(handlers.CreatePost(social))).Methods("POST")
	router.HandleFunc("/feed", handlers.GetFeed(social)).Methods("GET")
	router.Handle("/timeline", requireSession(handlers.GetTimeline(social))).Methods("GET")
	router.Handle("/posts/{owner}/{index}/like", optionalSession(handlers.LikePost(social))).Methods("POST")
	router.Handle("/posts/{owner}/{index}/dislike", optionalSession(handlers.DislikePost(social))).Methods("POST")

	return router
}
