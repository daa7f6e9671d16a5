package routes

import (
	"github.com/gorilla/mux"

	"masterboxer.com/project-micro-social/handlers"
	"masterboxer.com/project-micro-social/services"
)

func CreateUserRoutes(social *services.Social, sessions *services.Sessions, router *mux.Router) *mux.Router {
	requireSession := handlers.RequireSession(sessions)

	router.HandleFunc("/login", handlers.Login(social, sessions)).Methods("POST")
	router.HandleFunc("/users", handlers.GetUsers(social)).Methods("GET")
	router.HandleFunc("/users", handlers.CreateUser(social)).Methods("POST")
	router.HandleFunc("/users/{username}", handlers.GetUserByUsername(social)).Methods("GET")

	router.Handle("/users/{username}/follow", requireSession(handlers.FollowUser(social))).Methods("POST")
	router.HandleFunc("/users/{username}/following", handlers.GetUserFollowing(social)).Methods("GET")
	router.HandleFunc("/users/{username}/posts", handlers.GetPostsByUser(social)).Methods("GET")

	return router
}
