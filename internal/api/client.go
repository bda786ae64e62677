// Package api is a typed client for the video sharing backend.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client provides access to the backend REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new API client. token may be empty for anonymous
// access; like toggles and comment posting then fail with 401.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// ListOptions filter the video feed.
type ListOptions struct {
	Skip     int
	Limit    int
	Category string
	Search   string
}

// Videos returns the feed, newest first.
func (c *Client) Videos(opts ListOptions) ([]VideoSummary, error) {
	params := url.Values{}
	if opts.Skip > 0 {
		params.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}

	reqURL := c.baseURL + "/videos/"
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var videos []VideoSummary
	if err := c.get(reqURL, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Trending returns the most engaging videos. limit is capped at 20 by
// the backend.
func (c *Client) Trending(limit int) ([]VideoSummary, error) {
	reqURL := c.baseURL + "/videos/trending"
	if limit > 0 {
		reqURL += "?limit=" + strconv.Itoa(limit)
	}

	var videos []VideoSummary
	if err := c.get(reqURL, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Video fetches full video details. The backend counts this as a view.
func (c *Client) Video(id int) (*Video, error) {
	var video Video
	if err := c.get(c.baseURL+"/videos/"+strconv.Itoa(id), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// UserVideos returns the videos uploaded by one user.
func (c *Client) UserVideos(userID int) ([]VideoSummary, error) {
	var videos []VideoSummary
	if err := c.get(c.baseURL+"/videos/user/"+strconv.Itoa(userID), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Comments returns a page of comments for a video, newest first.
func (c *Client) Comments(videoID, skip, limit int) ([]Comment, error) {
	params := url.Values{}
	if skip > 0 {
		params.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	reqURL := fmt.Sprintf("%s/videos/%d/comments", c.baseURL, videoID)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var comments []Comment
	if err := c.get(reqURL, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CommentCount returns the total number of comments on a video.
func (c *Client) CommentCount(videoID int) (int, error) {
	var result commentCountResponse
	if err := c.get(c.baseURL+"/comments/count/"+strconv.Itoa(videoID), &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// PostComment adds a comment to a video. Requires a token.
func (c *Client) PostComment(videoID int, text string) (*Comment, error) {
	var comment Comment
	reqURL := fmt.Sprintf("%s/videos/%d/comments", c.baseURL, videoID)
	if err := c.post(reqURL, commentCreate{Text: text}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// LikeStatus returns the like/dislike counts for a video.
func (c *Client) LikeStatus(videoID int) (*LikeStatus, error) {
	var status LikeStatus
	if err := c.get(fmt.Sprintf("%s/videos/%d/likes", c.baseURL, videoID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ToggleLike likes or un-likes a video. Requires a token.
func (c *Client) ToggleLike(videoID int) (*LikeStatus, error) {
	var status LikeStatus
	if err := c.post(fmt.Sprintf("%s/videos/%d/like", c.baseURL, videoID), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ToggleDislike dislikes or un-dislikes a video. Requires a token.
func (c *Client) ToggleDislike(videoID int) (*LikeStatus, error) {
	var status LikeStatus
	if err := c.post(fmt.Sprintf("%s/videos/%d/dislike", c.baseURL, videoID), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// AbsoluteURL resolves a server-relative media path (video_url,
// thumbnail_url) against the client's base URL.
func (c *Client) AbsoluteURL(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	return c.baseURL + path
}

func (c *Client) get(reqURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(reqURL string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(http.MethodPost, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API status %d: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
