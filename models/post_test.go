package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostStampsSeconds(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 999, time.Local)
	p := NewPost("hello", now)

	assert.Equal(t, "hello", p.Content)
	assert.Equal(t, "2024-03-09 14:05:07", p.Timestamp)
	assert.Zero(t, p.Likes)
	assert.Zero(t, p.Dislikes)
}

func TestPostUnmarshalLegacyCounts(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		likes    int
		dislikes int
	}{
		{"integers", `{"content":"a","timestamp":"t","likes":4,"dislikes":2}`, 4, 2},
		{"empty lists", `{"content":"a","timestamp":"t","likes":[],"dislikes":[]}`, 0, 0},
		{"filled lists", `{"content":"a","timestamp":"t","likes":["bob"],"dislikes":3}`, 0, 3},
		{"nulls", `{"content":"a","timestamp":"t","likes":null,"dislikes":null}`, 0, 0},
		{"missing", `{"content":"a","timestamp":"t"}`, 0, 0},
		{"negative", `{"content":"a","timestamp":"t","likes":-2,"dislikes":1}`, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Post
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			assert.Equal(t, "a", p.Content)
			assert.Equal(t, tc.likes, p.Likes)
			assert.Equal(t, tc.dislikes, p.Dislikes)
		})
	}
}

func TestPostUnmarshalRejectsGarbageCount(t *testing.T) {
	var p Post
	err := json.Unmarshal([]byte(`{"content":"a","likes":"many"}`), &p)
	assert.Error(t, err)
}

func TestApplyLikeCancelsDislikesFirst(t *testing.T) {
	p := Post{Likes: 0, Dislikes: 2}

	p.ApplyLike()
	assert.Equal(t, Post{Likes: 0, Dislikes: 1}, p)

	p.ApplyLike()
	assert.Equal(t, Post{Likes: 0, Dislikes: 0}, p)

	p.ApplyLike()
	assert.Equal(t, Post{Likes: 1, Dislikes: 0}, p)
}

func TestApplyLikeWithLikesAndDislikes(t *testing.T) {
	// Quirk: once a post has any like, dislikes are never cancelled by a like.
	p := Post{Likes: 1, Dislikes: 5}
	p.ApplyLike()
	assert.Equal(t, Post{Likes: 2, Dislikes: 5}, p)
}

func TestApplyDislikeTakesBackLikes(t *testing.T) {
	p := Post{Likes: 3}

	for want := 2; want >= 0; want-- {
		p.ApplyDislike()
		assert.Equal(t, Post{Likes: want}, p)
	}

	p.ApplyDislike()
	assert.Equal(t, Post{Likes: 0, Dislikes: 1}, p)
}
