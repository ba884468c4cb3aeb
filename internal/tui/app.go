package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/analysis"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/exam"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/mode"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/render"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/tutor"
)

// Messages delivered by background commands.
type (
	tutorDoneMsg    struct{}
	hypoDoneMsg     struct{ text string }
	analysisDoneMsg struct {
		kind analysis.Kind
		text string
		err  error
	}
	bankChangedMsg struct{}
	importDoneMsg  struct{ results []bank.ImportResult }
	pageDoneMsg    struct {
		material bank.Material
		err      error
	}
)

type Model struct {
	width, height int
	viewport      viewport.Model
	textarea      textarea.Model
	spinner       spinner.Model

	modes    *mode.Controller
	store    *bank.Store
	dialog   *tutor.Manager
	engine   *analysis.Engine
	examGen  *exam.Generator
	styles   render.Styles
	log      *zap.Logger
	provName string
	modelID  string

	busy     bool
	category int // index into bank.Categories
	notices  []string
	hypo     string
	analysis string

	bankEvents chan struct{}

	ctx context.Context
}

func NewModel(ctx context.Context, store *bank.Store, dialog *tutor.Manager, engine *analysis.Engine, examGen *exam.Generator, modes *mode.Controller, provName, modelID string, log *zap.Logger) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about the CFAA, GDPR, or data breach negligence..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	m := Model{
		viewport: vp,
		textarea: ta,
		spinner:  sp,
		modes:    modes,
		store:    store,
		dialog:   dialog,
		engine:   engine,
		examGen:  examGen,
		styles:   render.DefaultStyles(),
		log:      log,
		provName: provName,
		modelID:  modelID,
		ctx:      ctx,

		bankEvents: make(chan struct{}, 1),
	}

	// Bank edits repaint whichever view is showing material counts. Uploads
	// and page fetches mutate the store off the update loop, so the observer
	// feeds a channel the program polls instead of touching the model.
	events := m.bankEvents
	store.Watch(func() {
		select {
		case events <- struct{}{}:
		default:
		}
	})

	m.rebuildView()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, tea.EnableMouseCellMotion, m.waitForBankEvent())
}

func (m Model) waitForBankEvent() tea.Cmd {
	events := m.bankEvents
	return func() tea.Msg {
		<-events
		return bankChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 7
		m.textarea.SetWidth(msg.Width - 6)
		m.rebuildView()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyPgUp:
			m.viewport.HalfViewUp()
			return m, nil
		case tea.KeyPgDown:
			m.viewport.HalfViewDown()
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			// Explicit navigation cycles Dialogue -> Editing -> ExamPractice.
			switch m.modes.Current() {
			case mode.Dialogue:
				m.modes.Set(mode.Editing)
			case mode.Editing:
				m.modes.Set(mode.ExamPractice)
			default:
				m.modes.Set(mode.Dialogue)
			}
			m.syncPlaceholder()
			m.rebuildView()
			return m, nil
		case tea.KeyEnter:
			if msg.Alt {
				break
			}
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" {
				return m, nil
			}
			m.textarea.Reset()
			if strings.HasPrefix(text, "/") {
				return m.handleCommand(text)
			}
			return m.handleInput(text)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case bankChangedMsg:
		m.rebuildView()
		return m, m.waitForBankEvent()

	case tutorDoneMsg:
		m.busy = false
		m.rebuildView()
		m.viewport.GotoBottom()
		return m, nil

	case hypoDoneMsg:
		m.busy = false
		m.hypo = msg.text
		m.rebuildView()
		return m, nil

	case analysisDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notices = append(m.notices, "Analysis failed: the tutor service could not be reached. Large scanned PDFs may exceed the API size limit; try removing them.")
		} else {
			m.analysis = msg.text
		}
		m.rebuildView()
		return m, nil

	case importDoneMsg:
		m.busy = false
		added, failed := 0, 0
		for _, r := range msg.results {
			if r.Err != nil {
				failed++
				m.notices = append(m.notices, r.Err.Error())
				continue
			}
			added++
		}
		m.notices = append(m.notices, fmt.Sprintf("Upload finished: %d added, %d rejected.", added, failed))
		m.rebuildView()
		return m, nil

	case pageDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notices = append(m.notices, "Page import failed: "+msg.err.Error())
		} else {
			m.notices = append(m.notices, "Added page: "+msg.material.Name)
		}
		m.rebuildView()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleInput routes plain text by mode: chat submits to the tutor, bank
// adds a note, exam generates a hypothetical.
func (m Model) handleInput(text string) (tea.Model, tea.Cmd) {
	switch m.modes.Current() {
	case mode.Editing:
		if _, err := m.store.AddText(text, m.currentCategory()); err != nil {
			m.notices = append(m.notices, err.Error())
		}
		m.rebuildView()
		return m, nil

	case mode.ExamPractice:
		if m.busy {
			return m, nil
		}
		m.busy = true
		topic := text
		m.rebuildView()
		return m, func() tea.Msg {
			return hypoDoneMsg{text: m.examGen.Hypothetical(m.ctx, topic)}
		}

	default:
		return m.submitToTutor(text)
	}
}

func (m Model) submitToTutor(text string) (tea.Model, tea.Cmd) {
	if m.busy {
		m.notices = append(m.notices, "The tutor is still thinking; your message was not sent.")
		m.rebuildView()
		return m, nil
	}
	m.busy = true
	cmd := func() tea.Msg {
		m.dialog.Submit(m.ctx, text)
		return tutorDoneMsg{}
	}
	// Submit appends the user turn before it suspends, but that happens on
	// the command goroutine; mirror it here so the message shows at once.
	m.rebuildViewWithPending(text)
	m.viewport.GotoBottom()
	return m, cmd
}

func (m *Model) currentCategory() bank.Category {
	return bank.Categories[m.category%len(bank.Categories)]
}

func (m *Model) syncPlaceholder() {
	switch m.modes.Current() {
	case mode.Editing:
		m.textarea.Placeholder = "Type a quick note/rule, or /upload <glob>..."
	case mode.ExamPractice:
		m.textarea.Placeholder = "Target topic, e.g. CFAA 'Without Authorization'..."
	default:
		m.textarea.Placeholder = "Ask about the CFAA, GDPR, or data breach negligence..."
	}
}
