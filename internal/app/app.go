// Package app wires the playback surface, video metadata and comments
// into the top-level bubbletea model.
package app

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/tgrange/reel/internal/api"
	"github.com/tgrange/reel/internal/engine"
	"github.com/tgrange/reel/internal/errmsg"
	"github.com/tgrange/reel/internal/keymap"
	"github.com/tgrange/reel/internal/mpris"
	"github.com/tgrange/reel/internal/notify"
	"github.com/tgrange/reel/internal/playback"
	"github.com/tgrange/reel/internal/state"
	"github.com/tgrange/reel/internal/surface"
)

const (
	commentPageSize = 50

	// A video resumes from its saved position only when meaningfully
	// started and not effectively finished.
	resumeMinPosition = 5 * time.Second
	resumeMaxFraction = 0.95
)

type focusZone int

const (
	focusPlayer focusZone = iota
	focusComments
)

// Options carries the dependencies for New.
type Options struct {
	Log      *logrus.Logger
	Client   *api.Client
	Engine   engine.Interface
	Monitor  *playback.Monitor
	State    state.Interface
	Desktop  *mpris.Adapter
	Notifier notify.Notifier
	VideoID  int
	Resume   bool
}

// Model is the top-level application model.
type Model struct {
	log      *logrus.Logger
	client   *api.Client
	eng      engine.Interface
	mon      *playback.Monitor
	states   state.Interface
	desktop  *mpris.Adapter
	notifier notify.Notifier
	videoID  int
	resume   bool

	surface      surface.Model
	comments     viewport.Model
	commentInput textinput.Model
	composing    bool

	video        *api.Video
	likes        *api.LikeStatus
	upNext       []api.VideoSummary
	commentList  []api.Comment
	commentCount int

	keys     *keymap.Resolver
	focus    focusZone
	width    int
	height   int
	status   string
	showHelp bool
}

func New(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Add a comment"
	input.CharLimit = 500

	return Model{
		log:      opts.Log,
		client:   opts.Client,
		eng:      opts.Engine,
		mon:      opts.Monitor,
		states:   opts.State,
		desktop:  opts.Desktop,
		notifier: opts.Notifier,
		videoID:  opts.VideoID,
		resume:   opts.Resume,
		surface:  surface.New(opts.Engine, opts.Monitor),
		comments: viewport.New(0, 0),
		keys:     keymap.NewResolver(keymap.ByContext("global")),

		commentInput: input,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.surface.Init(),
		loadVideo(m.client, m.videoID),
		loadLikeStatus(m.client, m.videoID),
		loadComments(m.client, m.videoID),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.SetWidth(msg.Width)
		m.resize()
		return m, nil

	case VideoLoadedMsg:
		return m.handleVideoLoaded(msg)

	case LikeStatusMsg:
		m.likes = msg.Status
		return m, nil

	case UpNextMsg:
		m.upNext = msg.Videos
		m.comments.SetContent(m.renderComments())
		return m, nil

	case CommentsMsg:
		m.commentList = msg.Comments
		m.commentCount = msg.Count
		m.comments.SetContent(m.renderComments())
		return m, nil

	case CommentPostedMsg:
		// Refetch so ordering and count come from the backend.
		return m, loadComments(m.client, m.videoID)

	case APIErrorMsg:
		m.status = errmsg.Format(msg.Op, msg.Err)
		m.log.WithError(msg.Err).Warn("api request failed")
		return m, nil

	case PlaybackErrorMsg:
		m.status = errmsg.Format(errmsg.OpPlaybackStart, msg.Err)
		m.log.WithError(msg.Err).Error("playback failed")
		return m, nil

	case surface.UpdateMsg:
		m.persistProgress(msg)
		return m.forwardToSurface(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Internal surface messages (hide deadline firings, subscription
	// teardown) route through here.
	return m.forwardToSurface(msg)
}

// forwardToSurface runs the surface update and recomputes the layout
// origin, since the surface height changes with menus and visibility.
func (m Model) forwardToSurface(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.surface, cmd = m.surface.Update(msg)
	m.resize()
	return m, cmd
}

// resize repositions the surface at the bottom of the window and gives
// the comments pane the rest.
func (m *Model) resize() {
	surfaceHeight := m.surface.Height()
	m.surface.SetOrigin(m.height - surfaceHeight)

	contentHeight := m.height - surfaceHeight - m.headerHeight() - 2 // panel border
	if contentHeight < 0 {
		contentHeight = 0
	}
	m.comments.Width = max(m.width-2, 0)
	m.comments.Height = contentHeight
}

func (m Model) handleVideoLoaded(msg VideoLoadedMsg) (tea.Model, tea.Cmd) {
	m.video = msg.Video

	src := m.client.AbsoluteURL(msg.Video.VideoURL)
	if err := m.eng.Load(src); err != nil {
		m.status = errmsg.FormatWith(errmsg.OpPlaybackStart, msg.Video.Title, err)
		m.log.WithError(err).Error("engine load failed")
		return m, nil
	}

	m.restoreSettings()
	m.restorePosition()

	if m.desktop != nil {
		m.desktop.SetNowPlaying(mpris.NowPlaying{
			VideoID:      msg.Video.ID,
			Title:        msg.Video.Title,
			Uploader:     msg.Video.Author.Username,
			ThumbnailURL: m.client.AbsoluteURL(msg.Video.ThumbnailURL),
		})
	}

	if err := m.eng.Play(); err != nil {
		m.status = errmsg.Format(errmsg.OpPlaybackStart, err)
	}
	m.notifyNowPlaying()
	m.resize()
	return m, loadUpNext(m.client, msg.Video.ID, msg.Video.Author.ID)
}

func (m *Model) notifyNowPlaying() {
	if m.notifier == nil || m.video == nil {
		return
	}
	if err := m.notifier.NowPlaying(m.video.Title, m.video.Author.Username); err != nil {
		m.log.WithError(err).Debug("notification failed")
	}
}

// restoreSettings applies the persisted volume, mute, rate and quality.
func (m *Model) restoreSettings() {
	settings, err := m.states.Settings()
	if err != nil {
		m.log.WithError(err).Warn("could not restore player settings")
		return
	}
	_ = m.eng.SetVolume(settings.Volume)
	_ = m.eng.SetMuted(settings.Muted)
	_ = m.eng.SetRate(settings.Rate)
	m.surface.SetQuality(settings.Quality)
}

// restorePosition seeks to the saved playhead when the video was left
// partway through.
func (m *Model) restorePosition() {
	if !m.resume {
		return
	}
	progress, err := m.states.Progress(videoKey(m.videoID))
	if err != nil || progress == nil {
		return
	}
	if progress.Position < resumeMinPosition {
		return
	}
	if progress.Duration > 0 &&
		float64(progress.Position) > resumeMaxFraction*float64(progress.Duration) {
		return
	}
	_ = m.eng.SeekTo(progress.Position)
}

// persistProgress records the playhead on engine progress updates. The
// state manager debounces the writes.
func (m *Model) persistProgress(msg surface.UpdateMsg) {
	if m.video == nil {
		return
	}
	switch msg.Kind {
	case engine.KindTimeUpdate, engine.KindEnded:
		m.states.SaveProgress(state.WatchProgress{
			VideoID:  videoKey(m.videoID),
			Position: msg.Snapshot.Position,
			Duration: msg.Snapshot.Duration,
		})
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.composing {
		return m.handleComposeKey(msg)
	}

	key := msg.String()
	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionSwitchFocus:
		if m.focus == focusPlayer {
			m.focus = focusComments
		} else {
			m.focus = focusPlayer
		}
		return m, nil
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch key {
	case "c":
		if m.video != nil {
			m.composing = true
			m.surface.SetInputCaptured(true)
			m.commentInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case "L":
		return m, toggleLike(m.client, m.videoID)
	case "D":
		return m, toggleDislike(m.client, m.videoID)
	}

	if m.focus == focusComments {
		var cmd tea.Cmd
		m.comments, cmd = m.comments.Update(msg)
		return m, cmd
	}
	return m.forwardToSurface(msg)
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.surface.SetInputCaptured(false)
		m.commentInput.Reset()
		return m, nil
	case "enter":
		text := m.commentInput.Value()
		m.composing = false
		m.surface.SetInputCaptured(false)
		m.commentInput.Reset()
		if text == "" {
			return m, nil
		}
		return m, postComment(m.client, m.videoID, text)
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Wheel over the content area scrolls comments; everything else
	// belongs to the surface, which tracks drags globally.
	if !m.surface.Scrubbing() &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) &&
		msg.Y < m.height-m.surface.Height() {
		var cmd tea.Cmd
		m.comments, cmd = m.comments.Update(msg)
		return m, cmd
	}
	return m.forwardToSurface(msg)
}

// quit persists settings, tears down the surface and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	snap := m.surface.Snapshot()
	if err := m.states.SaveSettings(state.Settings{
		Volume:  snap.Volume,
		Muted:   snap.Muted,
		Rate:    snap.Rate,
		Quality: m.surface.Quality(),
	}); err != nil {
		m.log.WithError(err).Warn("could not save player settings")
	}
	if m.notifier != nil {
		_ = m.notifier.Clear()
	}
	m.surface.Teardown()
	return m, tea.Quit
}

func videoKey(id int) string {
	return "video:" + strconv.Itoa(id)
}
