package services

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"masterboxer.com/project-micro-social/logging"
	"masterboxer.com/project-micro-social/models"
)

// Social is the command surface front ends drive. The acting user is named
// on every call; state lives only in the store's documents.
type Social struct {
	store    *Store
	notifier Notifier
}

func NewSocial(store *Store, notifier Notifier) *Social {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Social{store: store, notifier: notifier}
}

func (s *Social) Store() *Store { return s.store }

func (s *Social) SignUp(username, email string) (*models.User, error) {
	return s.store.Create(username, email)
}

func (s *Social) LogIn(username, email string) (*models.User, error) {
	return s.store.Authenticate(username, email)
}

func (s *Social) User(username string) (*models.User, error) {
	return s.store.Load(username)
}

func (s *Social) Publish(username, content string) (models.Post, error) {
	if content == "" {
		return models.Post{}, validationError("content is required")
	}
	u, err := s.store.Load(username)
	if err != nil {
		return models.Post{}, err
	}
	p, err := s.store.Post(u, content)
	if err != nil {
		return models.Post{}, err
	}

	followers, err := s.store.Followers(username)
	if err != nil {
		logging.Log.WithError(err).Warn("could not list followers for post notification")
		return p, nil
	}
	index := strconv.Itoa(len(u.Posts) - 1)
	for _, f := range followers {
		s.notify(f, fmt.Sprintf("%s posted", username), p.Content, map[string]string{
			"type":       "new_post",
			"author_id":  username,
			"post_index": index,
		})
	}
	return p, nil
}

func (s *Social) FollowUser(username, target string) error {
	u, err := s.store.Load(username)
	if err != nil {
		return err
	}
	t, err := s.store.Load(target)
	if err != nil {
		return err
	}

	already := u.IsFollowing(target)
	if err := s.store.Follow(u, t); err != nil {
		return err
	}
	if !already && username != target {
		s.notify(target, fmt.Sprintf("%s started following you", username), "", map[string]string{
			"type":        "new_follower",
			"follower_id": username,
		})
	}
	return nil
}

func (s *Social) Like(actor, owner string, index int) (models.Post, error) {
	return s.react(actor, owner, index, "post_like", "liked", s.store.ToggleLike)
}

func (s *Social) Dislike(actor, owner string, index int) (models.Post, error) {
	return s.react(actor, owner, index, "post_dislike", "disliked", s.store.ToggleDislike)
}

func (s *Social) react(actor, owner string, index int, kind, verb string,
	toggle func(*models.User, int) (models.Post, error)) (models.Post, error) {
	u, err := s.store.Load(owner)
	if err != nil {
		return models.Post{}, err
	}
	p, err := toggle(u, index)
	if err != nil {
		return models.Post{}, err
	}

	if actor != "" && actor != owner {
		s.notify(owner, fmt.Sprintf("%s %s your post", actor, verb), p.Content, map[string]string{
			"type":          kind,
			"post_index":    strconv.Itoa(index),
			"actor_id":      actor,
			"post_owner_id": owner,
		})
	}
	return p, nil
}

func (s *Social) Feed() ([]models.FeedEntry, error) {
	return s.store.ListFeed()
}

func (s *Social) Timeline(username string) ([]models.FeedEntry, error) {
	u, err := s.store.Load(username)
	if err != nil {
		return nil, err
	}
	return s.store.Timeline(u), nil
}

func (s *Social) PostsBy(username string) ([]models.FeedEntry, error) {
	return s.store.PostsBy(username)
}

// Following returns the resolved snapshots of the users username follows.
func (s *Social) Following(username string) ([]*models.User, error) {
	u, err := s.store.Load(username)
	if err != nil {
		return nil, err
	}
	return u.Followed, nil
}

func (s *Social) Users() ([]string, error) {
	dir := s.store.Directory()
	if err := dir.Load(); err != nil {
		return nil, errors.Wrap(err, "load directory")
	}
	return dir.ListAll(), nil
}

func (s *Social) notify(username, title, body string, data map[string]string) {
	if err := s.notifier.Notify(username, title, body, data); err != nil {
		logging.Log.WithFields(logrus.Fields{
			"username": username,
			"type":     data["type"],
		}).WithError(err).Warn("notification failed")
	}
}
