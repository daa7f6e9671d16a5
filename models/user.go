package models

import (
	"encoding/json"
)

type User struct {
	Username  string
	Email     string
	Posts     []Post
	Following []string

	// Followed holds the resolved snapshots of Following. Entries whose
	// document is missing are left out; it is never written to disk.
	Followed []*User

	// Likes and Dislikes are kept only so old documents round-trip.
	Likes    []json.RawMessage
	Dislikes []json.RawMessage
}

func NewUser(username, email string) *User {
	return &User{
		Username:  username,
		Email:     email,
		Posts:     []Post{},
		Following: []string{},
		Likes:     []json.RawMessage{},
		Dislikes:  []json.RawMessage{},
	}
}

func (u *User) IsFollowing(username string) bool {
	for _, name := range u.Following {
		if name == username {
			return true
		}
	}
	return false
}

// UserDocument is the on-disk shape of a user.
type UserDocument struct {
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Likes     []json.RawMessage `json:"likes"`
	Dislikes  []json.RawMessage `json:"dislikes"`
	Following []string          `json:"following"`
	Tweets    []Post            `json:"tweets"`
}

func (u *User) Document() UserDocument {
	return UserDocument{
		Username:  u.Username,
		Email:     u.Email,
		Likes:     nonNilRaw(u.Likes),
		Dislikes:  nonNilRaw(u.Dislikes),
		Following: nonNilStrings(u.Following),
		Tweets:    nonNilPosts(u.Posts),
	}
}

func (d UserDocument) User() *User {
	return &User{
		Username:  d.Username,
		Email:     d.Email,
		Posts:     nonNilPosts(d.Tweets),
		Following: nonNilStrings(d.Following),
		Likes:     nonNilRaw(d.Likes),
		Dislikes:  nonNilRaw(d.Dislikes),
	}
}

func EncodeUser(u *User) ([]byte, error) {
	return json.Marshal(u.Document())
}

func DecodeUser(data []byte) (*User, error) {
	var doc UserDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.User(), nil
}

// DirectoryDocument lists every username that has signed up, in
// registration order.
type DirectoryDocument struct {
	Usernames []string `json:"usernames"`
}

func EncodeDirectory(names []string) ([]byte, error) {
	return json.Marshal(DirectoryDocument{Usernames: nonNilStrings(names)})
}

func DecodeDirectory(data []byte) ([]string, error) {
	var doc DirectoryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return nonNilStrings(doc.Usernames), nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilPosts(p []Post) []Post {
	if p == nil {
		return []Post{}
	}
	return p
}

func nonNilRaw(r []json.RawMessage) []json.RawMessage {
	if r == nil {
		return []json.RawMessage{}
	}
	return r
}
