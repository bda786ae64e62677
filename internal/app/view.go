package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tgrange/reel/internal/ui/render"
	"github.com/tgrange/reel/internal/ui/styles"
)

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(styles.PanelStyle(m.focus == focusComments).
		Width(max(m.width-2, 0)).
		Render(m.comments.View()))
	b.WriteString("\n")

	if m.composing {
		b.WriteString(" " + m.commentInput.View() + "\n")
	} else if m.status != "" {
		b.WriteString(styles.T().S().Error.Render(render.Truncate(" "+m.status, m.width)) + "\n")
	}

	body := b.String()

	// Pin the surface to the bottom of the window.
	surfaceView := m.surface.View()
	bodyHeight := lipgloss.Height(body)
	gap := m.height - bodyHeight - m.surface.Height()
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	return body + surfaceView
}

// headerHeight is the fixed number of rows above the comments panel.
func (m Model) headerHeight() int {
	if m.showHelp {
		return 4
	}
	return 3
}

func (m Model) renderHeader() string {
	s := styles.T().S()

	if m.video == nil {
		return s.Muted.Render(" loading…") + "\n\n"
	}

	title := render.Truncate(m.video.Title, m.width-2)
	header := " " + styles.ApplyBoldGradient(title, styles.T().Primary, styles.T().Secondary)

	meta := fmt.Sprintf(" %s • %s views • %s",
		m.video.Author.Username,
		humanize.Comma(int64(m.video.ViewCount)),
		uploadedAgo(m.video.UploadDate),
	)
	if m.likes != nil {
		likeStyle := s.Muted
		if m.likes.UserHasLiked {
			likeStyle = s.Success
		}
		dislikeStyle := s.Muted
		if m.likes.UserHasDisliked {
			dislikeStyle = s.Error
		}
		meta += "  " +
			likeStyle.Render(fmt.Sprintf("▲ %d", m.likes.LikeCount)) + " " +
			dislikeStyle.Render(fmt.Sprintf("▼ %d", m.likes.DislikeCount))
	}

	lines := header + "\n" + s.Muted.Render(render.Truncate(meta, m.width))
	if m.showHelp {
		lines += "\n" + s.Subtle.Render(render.Truncate(
			" space play  ←/→ seek  j/l skip  ↑/↓ volume  m mute  s speed  x quality  f fullscreen  tab focus  c comment  L like  D dislike  q quit",
			m.width))
	}
	return lines
}

// renderComments builds the scrollable comments content.
func (m Model) renderComments() string {
	s := styles.T().S()
	width := max(m.comments.Width-1, 10)

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("Comments (%d)", m.commentCount)))
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(render.Separator(width)))
	b.WriteString("\n")

	if len(m.commentList) == 0 {
		b.WriteString(s.Muted.Render("No comments yet."))
		b.WriteString("\n")
	}

	body := lipgloss.NewStyle().Width(width)
	for i, c := range m.commentList {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Accent.Render(render.Sanitize(c.Author.Username)))
		b.WriteString(s.Subtle.Render("  " + uploadedAgo(c.CreatedAt)))
		b.WriteString("\n")
		b.WriteString(body.Render(render.Sanitize(c.Text)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderUpNext(width))
	return b.String()
}

// upNextUploaderCol is the fixed uploader column width in the rail.
const upNextUploaderCol = 14

// renderUpNext lays out the related-videos rail: uploader column, title,
// and right-aligned view count per row.
func (m Model) renderUpNext(width int) string {
	if len(m.upNext) == 0 {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.Title.Render("Up next"))
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(render.Separator(width)))
	b.WriteString("\n")

	for _, v := range m.upNext {
		views := humanize.Comma(int64(v.ViewCount)) + " views"
		titleWidth := max(width-upNextUploaderCol-lipgloss.Width(views)-2, 8)

		left := s.Accent.Render(render.TruncateAndPad(render.Sanitize(v.Author.Username), upNextUploaderCol)) +
			" " + render.TruncateEllipsis(render.Sanitize(v.Title), titleWidth)
		b.WriteString(render.Row(left, s.Muted.Render(views), width))
		b.WriteString("\n")
	}
	return b.String()
}

// uploadedAgo renders an ISO timestamp as a relative age.
func uploadedAgo(iso string) string {
	t, err := parseISOTime(iso)
	if err != nil {
		return iso
	}
	return humanize.Time(t)
}

func parseISOTime(iso string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", iso)
}
