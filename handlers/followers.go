package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"masterboxer.com/project-micro-social/services"
)

// FollowUser makes the signed-in user follow {username}.
func FollowUser(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := mux.Vars(r)["username"]
		follower := CurrentUsername(r)

		if err := social.FollowUser(follower, target); err != nil {
			respondError(w, err, "follow user")
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{
			"message":  "Now following " + target,
			"follower": follower,
			"target":   target,
		})
	}
}

func GetUserFollowing(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := mux.Vars(r)["username"]

		followed, err := social.Following(username)
		if err != nil {
			respondError(w, err, "load following")
			return
		}

		following := make([]UserResponse, 0, len(followed))
		for _, u := range followed {
			following = append(following, newUserResponse(u))
		}
		respondJSON(w, http.StatusOK, following)
	}
}
