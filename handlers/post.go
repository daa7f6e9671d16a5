package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"masterboxer.com/project-micro-social/models"
	"masterboxer.com/project-micro-social/services"
)

func CreatePost(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		p, err := social.Publish(CurrentUsername(r), req.Content)
		if err != nil {
			respondError(w, err, "create post")
			return
		}
		respondJSON(w, http.StatusCreated, p)
	}
}

func GetPostsByUser(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := social.PostsBy(mux.Vars(r)["username"])
		if err != nil {
			respondError(w, err, "load posts")
			return
		}
		respondJSON(w, http.StatusOK, posts)
	}
}

// GetFeed lists every user's posts in directory order.
func GetFeed(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := social.Feed()
		if err != nil {
			respondError(w, err, "load feed")
			return
		}
		respondJSON(w, http.StatusOK, feed)
	}
}

func GetTimeline(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timeline, err := social.Timeline(CurrentUsername(r))
		if err != nil {
			respondError(w, err, "load timeline")
			return
		}
		respondJSON(w, http.StatusOK, timeline)
	}
}

func LikePost(social *services.Social) http.HandlerFunc {
	return react(social.Like, "like post")
}

func DislikePost(social *services.Social) http.HandlerFunc {
	return react(social.Dislike, "dislike post")
}

func react(toggle func(actor, owner string, index int) (models.Post, error), action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		owner := vars["owner"]
		index, err := strconv.Atoi(vars["index"])
		if err != nil {
			http.Error(w, "Invalid post index", http.StatusBadRequest)
			return
		}

		p, err := toggle(CurrentUsername(r), owner, index)
		if err != nil {
			respondError(w, err, action)
			return
		}
		respondJSON(w, http.StatusOK, models.FeedEntry{Author: owner, Index: index, Post: p})
	}
}
