package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"masterboxer.com/project-micro-social/models"
	"masterboxer.com/project-micro-social/services"
)

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserResponse is the public view of a user. Follows are listed by name.
type UserResponse struct {
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Following []string      `json:"following"`
	Posts     []models.Post `json:"posts"`
}

func newUserResponse(u *models.User) UserResponse {
	doc := u.Document()
	return UserResponse{
		Username:  doc.Username,
		Email:     doc.Email,
		Following: doc.Following,
		Posts:     doc.Tweets,
	}
}

func CreateUser(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		u, err := social.SignUp(c.Username, c.Email)
		if err != nil {
			respondError(w, err, "create user")
			return
		}

		respondJSON(w, http.StatusCreated, newUserResponse(u))
	}
}

func Login(social *services.Social, sessions *services.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		u, err := social.LogIn(c.Username, c.Email)
		if err != nil {
			respondError(w, err, "log in")
			return
		}

		token, err := sessions.Issue(u.Username)
		if err != nil {
			respondError(w, err, "issue session")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"token": token,
			"user":  newUserResponse(u),
		})
	}
}

func GetUsers(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := social.Users()
		if err != nil {
			respondError(w, err, "list users")
			return
		}
		respondJSON(w, http.StatusOK, users)
	}
}

func GetUserByUsername(social *services.Social) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := mux.Vars(r)["username"]

		u, err := social.User(username)
		if err != nil {
			respondError(w, err, "load user")
			return
		}
		respondJSON(w, http.StatusOK, newUserResponse(u))
	}
}
