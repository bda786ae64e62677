package app

import (
	"github.com/tgrange/reel/internal/api"
	"github.com/tgrange/reel/internal/errmsg"
)

// VideoLoadedMsg carries the fetched video details.
type VideoLoadedMsg struct {
	Video *api.Video
}

// LikeStatusMsg carries refreshed like/dislike counts.
type LikeStatusMsg struct {
	Status *api.LikeStatus
}

// CommentsMsg carries a fetched page of comments.
type CommentsMsg struct {
	Comments []api.Comment
	Count    int
}

// UpNextMsg carries the related-videos rail shown under the comments.
type UpNextMsg struct {
	Videos []api.VideoSummary
}

// CommentPostedMsg confirms a posted comment.
type CommentPostedMsg struct {
	Comment *api.Comment
}

// PlaybackErrorMsg is a fatal error reported by the playback engine.
type PlaybackErrorMsg struct {
	Err error
}

// APIErrorMsg is a failed backend request. The app stays usable; the
// error is shown in the status line.
type APIErrorMsg struct {
	Op  errmsg.Op
	Err error
}
