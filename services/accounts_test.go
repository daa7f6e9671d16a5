package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterboxer.com/project-micro-social/database"
	"masterboxer.com/project-micro-social/models"
)

func TestCreateThenLoad(t *testing.T) {
	s, dir := newTestStore(t)

	created, err := s.Create("alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)

	loaded, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, "alice@example.com", loaded.Email)
	assert.Empty(t, loaded.Posts)
	assert.Empty(t, loaded.Following)
	assert.Empty(t, loaded.Followed)

	assert.JSONEq(t,
		`{"username":"alice","email":"alice@example.com","likes":[],"dislikes":[],"following":[],"tweets":[]}`,
		readFile(t, dir, "alice_data.txt"))
	assert.JSONEq(t, `{"usernames":["alice"]}`, readFile(t, dir, "user_data.txt"))
}

func TestCreateValidation(t *testing.T) {
	s, _ := newTestStore(t)

	cases := []struct{ username, email string }{
		{"", "a@x"},
		{"alice", ""},
		{"", ""},
		{"../etc", "a@x"},
		{`a\b`, "a@x"},
		{"..", "a@x"},
	}
	for _, tc := range cases {
		_, err := s.Create(tc.username, tc.email)
		assert.ErrorIs(t, err, ErrValidation, "%q/%q", tc.username, tc.email)
	}
	assert.Empty(t, s.Directory().ListAll())
}

func TestCreateRejectsTakenUsername(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Create("alice", "first@x")
	require.NoError(t, err)

	_, err = s.Create("alice", "second@x")
	assert.ErrorIs(t, err, ErrUserExists)

	u, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, "first@x", u.Email)
	assert.Equal(t, []string{"alice"}, s.Directory().ListAll())
}

func TestCreateSurfacesBackendErrors(t *testing.T) {
	docs := newFakeDocs()
	docs.hasErr = errDocs
	s := NewStore(docs, NewDirectory(docs))

	_, err := s.Create("alice", "a@x")
	assert.ErrorIs(t, err, errDocs)

	docs.hasErr = nil
	docs.writeErr = errDocs
	_, err = s.Create("alice", "a@x")
	assert.ErrorIs(t, err, errDocs)
}

func TestAuthenticate(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Create("alice", "Alice@example.com")
	require.NoError(t, err)

	u, err := s.Authenticate("alice", "Alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = s.Authenticate("alice", "alice@example.com")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = s.Authenticate("alice", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = s.Authenticate("bob", "Alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Authenticate("", "x")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPostAppendsAndPersists(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Create("alice", "a@x")
	require.NoError(t, err)

	p, err := s.Post(u, "first")
	require.NoError(t, err)
	assert.Equal(t, models.Post{Content: "first", Timestamp: "2024-06-01 12:30:45"}, p)

	_, err = s.Post(u, "second")
	require.NoError(t, err)

	loaded, err := s.Load("alice")
	require.NoError(t, err)
	require.Len(t, loaded.Posts, 2)
	assert.Equal(t, "first", loaded.Posts[0].Content)
	assert.Equal(t, "second", loaded.Posts[1].Content)
}

func TestPostRejectsEmptyContent(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Create("alice", "a@x")
	require.NoError(t, err)

	_, err = s.Post(u, "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, u.Posts)
}

func TestFollowIsIdempotent(t *testing.T) {
	s, dir := newTestStore(t)
	alice, err := s.Create("alice", "a@x")
	require.NoError(t, err)
	bob, err := s.Create("bob", "b@x")
	require.NoError(t, err)

	require.NoError(t, s.Follow(alice, bob))
	once := append([]string(nil), alice.Following...)
	require.NoError(t, s.Follow(alice, bob))

	assert.Equal(t, once, alice.Following)
	assert.Equal(t, []string{"bob"}, alice.Following)

	loaded, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, loaded.Following)

	// the target's document is untouched
	assert.JSONEq(t,
		`{"username":"bob","email":"b@x","likes":[],"dislikes":[],"following":[],"tweets":[]}`,
		readFile(t, dir, "bob_data.txt"))
}

func TestToggleLikeQuirk(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Create("alice", "a@x")
	require.NoError(t, err)
	u.Posts = []models.Post{{Content: "hot take", Timestamp: "t", Likes: 0, Dislikes: 2}}
	require.NoError(t, s.Save(u))

	// a like first cancels outstanding dislikes, then accumulates
	want := []models.Post{
		{Content: "hot take", Timestamp: "t", Likes: 0, Dislikes: 1},
		{Content: "hot take", Timestamp: "t", Likes: 0, Dislikes: 0},
		{Content: "hot take", Timestamp: "t", Likes: 1, Dislikes: 0},
	}
	for i, w := range want {
		p, err := s.ToggleLike(u, 0)
		require.NoError(t, err)
		assert.Equal(t, w, p, "like %d", i+1)

		loaded, err := s.Load("alice")
		require.NoError(t, err)
		assert.Equal(t, w, loaded.Posts[0], "persisted after like %d", i+1)
	}
}

func TestToggleDislikeTakesBackLikes(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Create("alice", "a@x")
	require.NoError(t, err)
	u.Posts = []models.Post{{Content: "c", Likes: 3}}
	require.NoError(t, s.Save(u))

	for want := 2; want >= 0; want-- {
		p, err := s.ToggleDislike(u, 0)
		require.NoError(t, err)
		assert.Equal(t, want, p.Likes)
		assert.Equal(t, 0, p.Dislikes)
	}

	p, err := s.ToggleDislike(u, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Likes)
	assert.Equal(t, 1, p.Dislikes)

	loaded, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Posts[0].Dislikes)
}

func TestToggleOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Create("alice", "a@x")
	require.NoError(t, err)

	_, err = s.ToggleLike(u, 0)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ToggleDislike(u, -1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	alice, err := s.Create("alice", "a@x")
	require.NoError(t, err)

	for _, name := range []string{"bob", "carol", "dave"} {
		f, err := s.Create(name, name+"@x")
		require.NoError(t, err)
		require.NoError(t, s.Follow(alice, f))
	}
	for i := 0; i < 5; i++ {
		_, err := s.Post(alice, fmt.Sprintf("post %d", i))
		require.NoError(t, err)
	}
	alice.Posts[2].Likes = 7
	alice.Posts[4].Dislikes = 1
	require.NoError(t, s.Save(alice))

	loaded, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.Posts, loaded.Posts)
	assert.Equal(t, []string{"bob", "carol", "dave"}, loaded.Following)
	require.Len(t, loaded.Followed, 3)
	for i, name := range []string{"bob", "carol", "dave"} {
		assert.Equal(t, name, loaded.Followed[i].Username)
		assert.Equal(t, name+"@x", loaded.Followed[i].Email)
	}
}

func TestLoadSkipsMissingFollowedUsers(t *testing.T) {
	s, dir := newTestStore(t)
	writeFile(t, dir, "alice_data.txt",
		`{"username":"alice","email":"a@x","likes":[],"dislikes":[],"following":["ghost","bob"],"tweets":[]}`)
	writeFile(t, dir, "bob_data.txt",
		`{"username":"bob","email":"b@x","likes":[],"dislikes":[],"following":[],"tweets":[]}`)

	u, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost", "bob"}, u.Following)
	require.Len(t, u.Followed, 1)
	assert.Equal(t, "bob", u.Followed[0].Username)

	// saving keeps the dangling reference
	require.NoError(t, s.Save(u))
	var doc models.UserDocument
	require.NoError(t, json.Unmarshal([]byte(readFile(t, dir, "alice_data.txt")), &doc))
	assert.Equal(t, []string{"ghost", "bob"}, doc.Following)
}

func TestLoadMutualFollowsDoNotRecurse(t *testing.T) {
	s, _ := newTestStore(t)
	alice, err := s.Create("alice", "a@x")
	require.NoError(t, err)
	bob, err := s.Create("bob", "b@x")
	require.NoError(t, err)
	require.NoError(t, s.Follow(alice, bob))
	require.NoError(t, s.Follow(bob, alice))
	require.NoError(t, s.Follow(alice, alice))

	u, err := s.Load("alice")
	require.NoError(t, err)
	require.Len(t, u.Followed, 2)

	b := u.Followed[0]
	assert.Equal(t, "bob", b.Username)
	require.Len(t, b.Followed, 1)
	assert.Same(t, u, b.Followed[0])
	assert.Same(t, u, u.Followed[1])
}

func TestLoadLegacyListCounts(t *testing.T) {
	s, dir := newTestStore(t)
	writeFile(t, dir, "old_data.txt",
		`{"username":"old","email":"o@x","likes":[],"dislikes":[],"following":[],
		  "tweets":[{"content":"hi","timestamp":"2023-01-01 09:00:00.000001","likes":[],"dislikes":[]}]}`)

	u, err := s.Load("old")
	require.NoError(t, err)
	require.Len(t, u.Posts, 1)
	assert.Equal(t, 0, u.Posts[0].Likes)
	assert.Equal(t, 0, u.Posts[0].Dislikes)

	p, err := s.ToggleLike(u, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Likes)
}

func TestLoadNotFoundAndCorrupt(t *testing.T) {
	s, dir := newTestStore(t)

	_, err := s.Load("nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Load("a/b")
	assert.ErrorIs(t, err, ErrNotFound)

	writeFile(t, dir, "broken_data.txt", `{not json`)
	_, err = s.Load("broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLoadSurfacesReadErrors(t *testing.T) {
	docs := newFakeDocs()
	docs.readErr = errDocs
	s := NewStore(docs, NewDirectory(docs))

	_, err := s.Load("alice")
	assert.ErrorIs(t, err, errDocs)
}

func TestSaveRegistersInDirectory(t *testing.T) {
	docs := newFakeDocs()
	s := NewStore(docs, NewDirectory(docs))

	u := models.NewUser("alice", "a@x")
	require.NoError(t, s.Save(u))
	require.NoError(t, s.Save(u))

	assert.Equal(t, []string{database.UserDocument("alice"), database.DirectoryDocument, database.UserDocument("alice")}, docs.writes)
	assert.JSONEq(t, `{"usernames":["alice"]}`, string(docs.docs[database.DirectoryDocument]))
}

func TestSaveRejectsUnsafeUsername(t *testing.T) {
	docs := newFakeDocs()
	s := NewStore(docs, NewDirectory(docs))

	err := s.Save(models.NewUser("../x", "a@x"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, docs.writes)
}

func TestFollowers(t *testing.T) {
	s, _ := newTestStore(t)
	alice, err := s.Create("alice", "a@x")
	require.NoError(t, err)
	bob, err := s.Create("bob", "b@x")
	require.NoError(t, err)
	carol, err := s.Create("carol", "c@x")
	require.NoError(t, err)
	require.NoError(t, s.Directory().Register("ghost"))

	require.NoError(t, s.Follow(carol, alice))
	require.NoError(t, s.Follow(bob, alice))
	require.NoError(t, s.Follow(alice, alice))

	followers, err := s.Followers("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, followers)

	followers, err = s.Followers("bob")
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestUsernameCannotShadowDirectory(t *testing.T) {
	s, dir := newTestStore(t)
	_, err := s.Create("alice", "a@x")
	require.NoError(t, err)

	_, err = s.Create("user", "u@x")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, s.Save(models.NewUser("user", "u@x")), ErrValidation)

	_, err = s.Load("user")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.JSONEq(t, `{"usernames":["alice"]}`, readFile(t, dir, "user_data.txt"))
}

func TestFollowersSeesUsersRegisteredElsewhere(t *testing.T) {
	s, dir := newTestStore(t)
	_, err := s.Create("alice", "a@x")
	require.NoError(t, err)

	// written by another process after this store loaded the directory
	writeFile(t, dir, "late_data.txt",
		`{"username":"late","email":"l@x","likes":[],"dislikes":[],"following":["alice"],"tweets":[]}`)
	writeFile(t, dir, "user_data.txt", `{"usernames":["alice","late"]}`)

	followers, err := s.Followers("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"late"}, followers)
}
