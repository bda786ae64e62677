package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token"), srv
}

func TestVideos(t *testing.T) {
	var gotPath, gotQuery string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]VideoSummary{
			{ID: 1, Title: "First", ViewCount: 10},
			{ID: 2, Title: "Second", ViewCount: 3},
		})
	})

	videos, err := c.Videos(ListOptions{Limit: 20, Search: "cats"})
	if err != nil {
		t.Fatalf("Videos failed: %v", err)
	}
	if gotPath != "/videos/" {
		t.Errorf("path = %q, want /videos/", gotPath)
	}
	if gotQuery != "limit=20&search=cats" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(videos) != 2 || videos[0].Title != "First" {
		t.Errorf("videos = %+v", videos)
	}
}

func TestVideo_DecodesDetail(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos/7" {
			t.Errorf("path = %q, want /videos/7", r.URL.Path)
		}
		dur := 125.0
		_ = json.NewEncoder(w).Encode(Video{
			ID:       7,
			Title:    "Some Video",
			VideoURL: "/storage/uploads/videos/abc.mp4",
			Duration: &dur,
			Author:   Author{ID: 3, Username: "uploader"},
		})
	})

	v, err := c.Video(7)
	if err != nil {
		t.Fatalf("Video failed: %v", err)
	}
	if v.Title != "Some Video" || v.Author.Username != "uploader" {
		t.Errorf("video = %+v", v)
	}
	if v.Duration == nil || *v.Duration != 125.0 {
		t.Errorf("Duration = %v, want 125", v.Duration)
	}
}

func TestVideo_NotFound(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Video not found"}`, http.StatusNotFound)
	})

	_, err := c.Video(999)
	if err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestPostComment_SendsAuthAndBody(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		var body commentCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Text != "nice one" {
			t.Errorf("text = %q", body.Text)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Comment{ID: 1, Text: body.Text})
	})

	comment, err := c.PostComment(7, "nice one")
	if err != nil {
		t.Fatalf("PostComment failed: %v", err)
	}
	if comment.Text != "nice one" {
		t.Errorf("comment = %+v", comment)
	}
}

func TestCommentCount(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/count/7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"video_id": 7, "comment_count": 42}`))
	})

	count, err := c.CommentCount(7)
	if err != nil {
		t.Fatalf("CommentCount failed: %v", err)
	}
	if count != 42 {
		t.Errorf("count = %d, want 42", count)
	}
}

func TestToggleLike(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos/7/like" || r.Method != http.MethodPost {
			t.Errorf("%s %s, want POST /videos/7/like", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(LikeStatus{VideoID: 7, LikeCount: 5, UserHasLiked: true})
	})

	status, err := c.ToggleLike(7)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !status.UserHasLiked || status.LikeCount != 5 {
		t.Errorf("status = %+v", status)
	}
}

func TestAnonymousClient_OmitsAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want unset", got)
		}
		_ = json.NewEncoder(w).Encode([]VideoSummary{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Videos(ListOptions{}); err != nil {
		t.Fatalf("Videos failed: %v", err)
	}
}

func TestAbsoluteURL(t *testing.T) {
	c := NewClient("http://localhost:8000", "")

	tests := []struct {
		in   string
		want string
	}{
		{"/storage/uploads/videos/abc.mp4", "http://localhost:8000/storage/uploads/videos/abc.mp4"},
		{"https://cdn.example.com/v.mp4", "https://cdn.example.com/v.mp4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := c.AbsoluteURL(tt.in); got != tt.want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrending(t *testing.T) {
	var gotPath, gotQuery string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]VideoSummary{
			{ID: 4, Title: "Hot", ViewCount: 9000},
		})
	})

	videos, err := c.Trending(5)
	if err != nil {
		t.Fatalf("Trending failed: %v", err)
	}
	if gotPath != "/videos/trending" {
		t.Errorf("path = %q, want /videos/trending", gotPath)
	}
	if gotQuery != "limit=5" {
		t.Errorf("query = %q, want limit=5", gotQuery)
	}
	if len(videos) != 1 || videos[0].Title != "Hot" {
		t.Errorf("videos = %+v", videos)
	}
}

func TestTrending_NoLimitOmitsQuery(t *testing.T) {
	var gotQuery string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]VideoSummary{})
	})

	if _, err := c.Trending(0); err != nil {
		t.Fatalf("Trending failed: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want empty", gotQuery)
	}
}

func TestUserVideos(t *testing.T) {
	var gotPath string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]VideoSummary{
			{ID: 11, Title: "Upload one", Author: Author{ID: 3, Username: "uploader"}},
			{ID: 12, Title: "Upload two", Author: Author{ID: 3, Username: "uploader"}},
		})
	})

	videos, err := c.UserVideos(3)
	if err != nil {
		t.Fatalf("UserVideos failed: %v", err)
	}
	if gotPath != "/videos/user/3" {
		t.Errorf("path = %q, want /videos/user/3", gotPath)
	}
	if len(videos) != 2 || videos[1].Title != "Upload two" {
		t.Errorf("videos = %+v", videos)
	}
}
