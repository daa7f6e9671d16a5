package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// TimestampLayout is the wall-clock layout posts are stamped with.
const TimestampLayout = "2006-01-02 15:04:05"

type Post struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Dislikes  int    `json:"dislikes"`
}

func NewPost(content string, now time.Time) Post {
	return Post{
		Content:   content,
		Timestamp: now.Format(TimestampLayout),
	}
}

// UnmarshalJSON accepts the old document format where likes and dislikes
// were written as lists. Those, and nulls, read back as zero.
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw struct {
		Content   string          `json:"content"`
		Timestamp string          `json:"timestamp"`
		Likes     json.RawMessage `json:"likes"`
		Dislikes  json.RawMessage `json:"dislikes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	likes, err := decodeCount(raw.Likes)
	if err != nil {
		return err
	}
	dislikes, err := decodeCount(raw.Dislikes)
	if err != nil {
		return err
	}

	*p = Post{
		Content:   raw.Content,
		Timestamp: raw.Timestamp,
		Likes:     likes,
		Dislikes:  dislikes,
	}
	return nil
}

func decodeCount(raw json.RawMessage) (int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '[' || bytes.Equal(trimmed, []byte("null")) {
		return 0, nil
	}

	var n int
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}
