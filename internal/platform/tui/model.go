package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
	"github.com/astelice/cling/internal/engine"
	"github.com/astelice/cling/internal/storage"
)

// Model is the Bubble Tea model driving one game session.
// It owns the tick loop and input translation; every rule lives in the
// engine, and rendering works off the last snapshot only.
type Model struct {
	session *engine.Session
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	layout  Layout

	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	snap       engine.Snapshot

	quitting bool
	runSaved bool // whether the current game over was persisted
}

// NewModel creates a model for the given tuning, content, and storage.
// store may be nil; the game then runs without persistence.
func NewModel(cfg *config.Config, lib *content.Library, store *storage.Store, rt core.RuntimeConfig) Model {
	session := engine.NewSession(cfg, lib, rt)

	layout := NewLayout(rt.ScreenW, rt.ScreenH)
	session.SetPlayArea(layout.PlayArea())

	if store != nil {
		if survivals, err := store.TopSurvivals(10); err == nil {
			session.MergeHighScores(survivals)
		}
	}

	return Model{
		session:    session,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		config:     rt,
		layout:     layout,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		snap:       session.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Digits select the reply or challenge item shown under that number.
	if idx := m.keyMapper.MapDigit(msg); idx >= 0 {
		switch {
		case m.snap.Challenge != nil && idx < len(m.snap.Challenge.Items):
			m.inputFrame.Pick = idx
		case m.snap.Prompt != nil && idx < len(m.snap.Prompt.Choices):
			m.inputFrame.SetReply(m.snap.Prompt.ID, idx)
		}
	}

	return m, nil
}

// handleMouse maps clicks to frame input using the shared layout, so a
// click means exactly what is drawn at that cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x, y := msg.X, msg.Y

	switch {
	case m.snap.Phase == engine.PhaseIntro:
		m.inputFrame.Set(core.ActionConfirm)

	case m.snap.Phase == engine.PhaseGameOver:
		m.inputFrame.Set(core.ActionRestart)

	case m.snap.Challenge != nil:
		items := m.snap.Challenge.Items
		if len(items) == 0 {
			if m.layout.ChallengeButton().Contains(x, y) {
				m.inputFrame.Set(core.ActionPress)
			}
			return m, nil
		}
		for i := range items {
			if m.layout.ChallengeItem(len(items), i).Contains(x, y) {
				m.inputFrame.Pick = i
				break
			}
		}

	case m.snap.Prompt != nil && m.layout.PromptPanel().Contains(x, y):
		for i := range m.snap.Prompt.Choices {
			if m.layout.ReplyOption(i, len(m.snap.Prompt.Choices)).Contains(x, y) {
				m.inputFrame.SetReply(m.snap.Prompt.ID, i)
				break
			}
		}

	case m.layout.PlayArea().Contains(x, y):
		m.inputFrame.AddClick(x, y)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.layout = NewLayout(msg.Width, msg.Height)
	m.session.SetPlayArea(m.layout.PlayArea())
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.snap = m.session.Snapshot()

	if result.JustEnded {
		m.runSaved = false
	}
	if result.Phase == engine.PhaseGameOver && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(result.Survival, m.snap.EndReason.String())
		}
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the last snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.layout, m.snap)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one local game.
func Run(cfg *config.Config, lib *content.Library, store *storage.Store, rt core.RuntimeConfig) error {
	model := NewModel(cfg, lib, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Petting is click-driven
	)

	_, err := p.Run()
	return err
}
