package models

// ApplyLike registers a like. A post with no likes but outstanding dislikes
// loses one dislike instead of gaining a like.
func (p *Post) ApplyLike() {
	if p.Likes == 0 && p.Dislikes > 0 {
		p.Dislikes--
		return
	}
	p.Likes++
}

// ApplyDislike registers a dislike. Existing likes are taken back one at a
// time before any dislike is counted.
func (p *Post) ApplyDislike() {
	if p.Likes > 0 {
		p.Likes--
		return
	}
	p.Dislikes++
}

// FeedEntry is one rendered row of the aggregated feed. Author and Index
// locate the post again when a front end acts on the selection.
type FeedEntry struct {
	Author string `json:"author"`
	Index  int    `json:"index"`
	Post   Post   `json:"post"`
}
