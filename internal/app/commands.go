package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/tgrange/reel/internal/api"
	"github.com/tgrange/reel/internal/errmsg"
)

// upNextSize caps the related-videos rail.
const upNextSize = 5

func loadVideo(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		video, err := client.Video(id)
		if err != nil {
			return APIErrorMsg{Op: errmsg.OpVideoLoad, Err: err}
		}
		return VideoLoadedMsg{Video: video}
	}
}

func loadLikeStatus(client *api.Client, videoID int) tea.Cmd {
	return func() tea.Msg {
		status, err := client.LikeStatus(videoID)
		if err != nil {
			return APIErrorMsg{Op: errmsg.OpLikesLoad, Err: err}
		}
		return LikeStatusMsg{Status: status}
	}
}

func loadComments(client *api.Client, videoID int) tea.Cmd {
	return func() tea.Msg {
		comments, err := client.Comments(videoID, 0, commentPageSize)
		if err != nil {
			return APIErrorMsg{Op: errmsg.OpCommentsLoad, Err: err}
		}
		count, err := client.CommentCount(videoID)
		if err != nil {
			count = len(comments)
		}
		return CommentsMsg{Comments: comments, Count: count}
	}
}

// loadUpNext builds the related-videos rail: more from the same uploader
// first, topped up from trending. Reported only if both sources fail.
func loadUpNext(client *api.Client, videoID, authorID int) tea.Cmd {
	return func() tea.Msg {
		byUploader, uploaderErr := client.UserVideos(authorID)

		var trending []api.VideoSummary
		var trendingErr error
		if len(byUploader) <= upNextSize {
			trending, trendingErr = client.Trending(upNextSize)
		}
		if uploaderErr != nil && trendingErr != nil {
			return APIErrorMsg{Op: errmsg.OpUpNextLoad, Err: trendingErr}
		}

		rail := make([]api.VideoSummary, 0, len(byUploader)+len(trending))
		rail = append(rail, byUploader...)
		rail = append(rail, trending...)
		return UpNextMsg{Videos: upNextRail(rail, videoID)}
	}
}

// upNextRail drops the current video and duplicates, keeping source
// order, and caps the rail at upNextSize entries.
func upNextRail(videos []api.VideoSummary, currentID int) []api.VideoSummary {
	rail := lo.UniqBy(videos, func(v api.VideoSummary) int { return v.ID })
	rail = lo.Filter(rail, func(v api.VideoSummary, _ int) bool { return v.ID != currentID })
	if len(rail) > upNextSize {
		rail = rail[:upNextSize]
	}
	return rail
}

func toggleLike(client *api.Client, videoID int) tea.Cmd {
	return func() tea.Msg {
		status, err := client.ToggleLike(videoID)
		if err != nil {
			return APIErrorMsg{Op: errmsg.OpLikeToggle, Err: err}
		}
		return LikeStatusMsg{Status: status}
	}
}

func toggleDislike(client *api.Client, videoID int) tea.Cmd {
	return func() tea.Msg {
		status, err := client.ToggleDislike(videoID)
		if err != nil {
			return APIErrorMsg{Op: errmsg.OpLikeToggle, Err: err}
		}
		return LikeStatusMsg{Status: status}
	}
}

func postComment(client *api.Client, videoID int, text string) tea.Cmd {
	return func() tea.Msg {
		comment, err := client.PostComment(videoID, text)
		if err != nil {
			return APIErrorMsg{Op: errmsg.OpCommentPost, Err: err}
		}
		return CommentPostedMsg{Comment: comment}
	}
}
