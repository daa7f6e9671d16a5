package services

import (
	"masterboxer.com/project-micro-social/models"
)

// ListFeed flattens every registered user's posts. Users come in directory
// order and each user's posts in the order they were written; there is no
// sort by timestamp.
func (s *Store) ListFeed() ([]models.FeedEntry, error) {
	if err := s.dir.Load(); err != nil {
		return nil, err
	}

	users, err := s.dir.ResolveAll(s)
	if err != nil {
		return nil, err
	}

	feed := []models.FeedEntry{}
	for _, u := range users {
		feed = appendPosts(feed, u)
	}
	return feed, nil
}

// Timeline lists the posts of the users user follows, then user's own.
func (s *Store) Timeline(user *models.User) []models.FeedEntry {
	feed := []models.FeedEntry{}
	for _, f := range user.Followed {
		feed = appendPosts(feed, f)
	}
	return appendPosts(feed, user)
}

// PostsBy lists one user's posts in creation order.
func (s *Store) PostsBy(username string) ([]models.FeedEntry, error) {
	u, err := s.read(username)
	if err != nil {
		return nil, err
	}
	return appendPosts([]models.FeedEntry{}, u), nil
}

func appendPosts(feed []models.FeedEntry, u *models.User) []models.FeedEntry {
	for i, p := range u.Posts {
		feed = append(feed, models.FeedEntry{Author: u.Username, Index: i, Post: p})
	}
	return feed
}
