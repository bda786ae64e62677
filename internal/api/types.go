package api

// Author identifies the uploader of a video or comment.
type Author struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image"`
	VideoCount   int    `json:"video_count"`
}

// VideoSummary is a feed entry. Duration is nil when the backend has
// not extracted it.
type VideoSummary struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	ThumbnailURL string   `json:"thumbnail_url"`
	ViewCount    int      `json:"view_count"`
	UploadDate   string   `json:"upload_date"`
	Duration     *float64 `json:"duration"`
	Category     string   `json:"category"`
	LikeCount    int      `json:"like_count"`
	Author       Author   `json:"author"`
}

// Video is the full detail response. Fetching it increments the view
// count server-side.
type Video struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         string   `json:"tags"`
	VideoURL     string   `json:"video_url"`
	ThumbnailURL string   `json:"thumbnail_url"`
	ViewCount    int      `json:"view_count"`
	UploadDate   string   `json:"upload_date"`
	Duration     *float64 `json:"duration"`
	LikeCount    int      `json:"like_count"`
	Author       Author   `json:"author"`
}

// Comment is one viewer comment with its author.
type Comment struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	Author    Author `json:"author"`
}

// LikeStatus carries the like/dislike counts and the caller's flags.
type LikeStatus struct {
	VideoID         int    `json:"video_id"`
	LikeCount       int    `json:"like_count"`
	DislikeCount    int    `json:"dislike_count"`
	UserHasLiked    bool   `json:"user_has_liked"`
	UserHasDisliked bool   `json:"user_has_disliked"`
	Message         string `json:"message"`
}

// commentCountResponse is the shape of GET /comments/count/{id}.
type commentCountResponse struct {
	VideoID int `json:"video_id"`
	Count   int `json:"comment_count"`
}

// commentCreate is the POST body for creating a comment.
type commentCreate struct {
	Text string `json:"text"`
}
