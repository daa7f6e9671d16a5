package services

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"masterboxer.com/project-micro-social/database"
	"masterboxer.com/project-micro-social/logging"
	"masterboxer.com/project-micro-social/models"
)

// Store owns user documents and the directory that indexes them. Every
// mutating call persists the affected user before returning.
type Store struct {
	docs database.DocumentStore
	dir  *Directory
	now  func() time.Time
}

type StoreOption func(*Store)

// WithClock overrides the clock used to stamp new posts.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func NewStore(docs database.DocumentStore, dir *Directory, opts ...StoreOption) *Store {
	s := &Store{docs: docs, dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Directory() *Directory { return s.dir }

func validUsername(username string) error {
	if username == "" {
		return validationError("username is required")
	}
	if username == "." || username == ".." || strings.ContainsAny(username, `/\`) {
		return validationError("username must not contain path separators")
	}
	if database.UserDocument(username) == database.DirectoryDocument {
		return validationError("username is reserved")
	}
	return nil
}

// Create signs up a new user and registers it in the directory.
func (s *Store) Create(username, email string) (*models.User, error) {
	if err := validUsername(username); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, validationError("email is required")
	}

	exists, err := s.docs.HasDocument(database.UserDocument(username))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Wrapf(ErrUserExists, "username %q", username)
	}

	u := models.NewUser(username, email)
	if err := s.Save(u); err != nil {
		return nil, err
	}
	logging.Log.WithField("username", username).Info("user signed up")
	return u, nil
}

// Authenticate loads username and checks the stored email matches exactly.
func (s *Store) Authenticate(username, email string) (*models.User, error) {
	if username == "" {
		return nil, validationError("username is required")
	}

	u, err := s.Load(username)
	if err != nil {
		return nil, err
	}
	if u.Username != username || u.Email != email {
		logging.Log.WithField("username", username).Warn("login rejected")
		return nil, errors.Wrapf(ErrAuthenticationFailed, "username %q", username)
	}
	return u, nil
}

// Post appends a new post to user and persists it.
func (s *Store) Post(user *models.User, content string) (models.Post, error) {
	if content == "" {
		return models.Post{}, validationError("content is required")
	}

	p := models.NewPost(content, s.now())
	user.Posts = append(user.Posts, p)
	if err := s.Save(user); err != nil {
		return models.Post{}, err
	}
	logging.Log.WithField("username", user.Username).Info("posted")
	return p, nil
}

// Follow makes user follow target. Following someone twice is a no-op.
// Only user is persisted.
func (s *Store) Follow(user, target *models.User) error {
	if user.IsFollowing(target.Username) {
		return nil
	}

	user.Following = append(user.Following, target.Username)
	user.Followed = append(user.Followed, target)
	if err := s.Save(user); err != nil {
		return err
	}
	logging.Log.WithFields(logrus.Fields{
		"username": user.Username,
		"target":   target.Username,
	}).Info("followed")
	return nil
}

// ToggleLike applies a like to owner's post at index and persists owner.
func (s *Store) ToggleLike(owner *models.User, index int) (models.Post, error) {
	return s.react(owner, index, "liked", (*models.Post).ApplyLike)
}

// ToggleDislike applies a dislike to owner's post at index and persists owner.
func (s *Store) ToggleDislike(owner *models.User, index int) (models.Post, error) {
	return s.react(owner, index, "disliked", (*models.Post).ApplyDislike)
}

func (s *Store) react(owner *models.User, index int, verb string, apply func(*models.Post)) (models.Post, error) {
	if index < 0 || index >= len(owner.Posts) {
		return models.Post{}, errors.Wrapf(ErrNotFound, "post %d of %q", index, owner.Username)
	}

	p := &owner.Posts[index]
	apply(p)
	if err := s.Save(owner); err != nil {
		return models.Post{}, err
	}
	logging.Log.WithFields(logrus.Fields{
		"owner":    owner.Username,
		"index":    index,
		"likes":    p.Likes,
		"dislikes": p.Dislikes,
	}).Info(verb)
	return *p, nil
}

// Followers lists, in directory order, the users whose Following names
// username. username itself is left out.
func (s *Store) Followers(username string) ([]string, error) {
	if err := s.dir.Load(); err != nil {
		return nil, err
	}

	followers := []string{}
	for _, name := range s.dir.ListAll() {
		if name == username {
			continue
		}
		u, err := s.read(name)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if u.IsFollowing(username) {
			followers = append(followers, name)
		}
	}
	return followers, nil
}

// Load reads username's document and resolves the users it follows. Mutual
// follows share snapshots instead of being loaded again.
func (s *Store) Load(username string) (*models.User, error) {
	return s.load(username, map[string]*models.User{})
}

func (s *Store) load(username string, seen map[string]*models.User) (*models.User, error) {
	if u, ok := seen[username]; ok {
		return u, nil
	}

	u, err := s.read(username)
	if err != nil {
		return nil, err
	}
	seen[username] = u

	u.Followed = make([]*models.User, 0, len(u.Following))
	for _, name := range u.Following {
		f, err := s.load(name, seen)
		if errors.Is(err, ErrNotFound) {
			logging.Log.WithFields(logrus.Fields{
				"username": username,
				"target":   name,
			}).Debug("followed user has no document")
			continue
		}
		if err != nil {
			return nil, err
		}
		u.Followed = append(u.Followed, f)
	}
	return u, nil
}

func (s *Store) read(username string) (*models.User, error) {
	// a name that cannot be a document key has no document
	if validUsername(username) != nil {
		return nil, errors.Wrapf(ErrNotFound, "user %q", username)
	}

	data, err := s.docs.ReadDocument(database.UserDocument(username))
	if errors.Is(err, database.ErrNoDocument) {
		return nil, errors.Wrapf(ErrNotFound, "user %q", username)
	}
	if err != nil {
		return nil, err
	}

	u, err := models.DecodeUser(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode user %q", username)
	}
	logging.Log.WithField("username", username).Debug("loaded user")
	return u, nil
}

// Save writes user's document and makes sure the directory lists it.
func (s *Store) Save(user *models.User) error {
	if err := validUsername(user.Username); err != nil {
		return err
	}
	data, err := models.EncodeUser(user)
	if err != nil {
		return errors.Wrapf(err, "encode user %q", user.Username)
	}
	if err := s.docs.WriteDocument(database.UserDocument(user.Username), data); err != nil {
		return err
	}
	return s.dir.Register(user.Username)
}
