package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/analysis"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/exam"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/mode"
)

const helpText = `  Commands:
    /chat /bank /exam      — switch view (Tab cycles)
    /cat                   — cycle upload category (bank view)
    /upload <glob>...      — upload files (pdf, audio, text; 10MiB cap each)
    /astext <path>         — extract a document's text into a note
    /page <url>            — add a web page as a Reading
    /rm <n>                — remove the n-th material
    /outline /patterns /rules — analyze the whole knowledge bank
    /answer                — ask for a model IRAC answer to the current hypo
    /topics                — list popular exam topics
    /clear                 — clear the chat (the seed reading is restored)
    /help /quit

  Keys: Enter send · Tab switch view · PgUp/PgDn scroll · Esc quit`

func (m Model) handleCommand(text string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(text)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "/help":
		m.notices = append(m.notices, helpText)

	case "/quit":
		return m, tea.Quit

	case "/chat":
		m.modes.Set(mode.Dialogue)
	case "/bank":
		m.modes.Set(mode.Editing)
	case "/exam":
		m.modes.Set(mode.ExamPractice)

	case "/cat":
		m.category++
		m.notices = append(m.notices, "Upload category: "+string(m.currentCategory()))

	case "/upload":
		if len(args) == 0 {
			m.notices = append(m.notices, "Usage: /upload <glob>...")
			break
		}
		m.busy = true
		category := m.currentCategory()
		store := m.store
		m.syncPlaceholder()
		m.rebuildView()
		return m, func() tea.Msg {
			return importDoneMsg{results: store.ImportFiles(args, category)}
		}

	case "/astext":
		if len(args) != 1 {
			m.notices = append(m.notices, "Usage: /astext <path>")
			break
		}
		if _, err := m.store.ImportAsText(args[0], m.currentCategory()); err != nil {
			m.notices = append(m.notices, "Extraction failed: "+err.Error())
		}

	case "/page":
		if len(args) != 1 {
			m.notices = append(m.notices, "Usage: /page <url>")
			break
		}
		m.busy = true
		url := args[0]
		store := m.store
		ctx := m.ctx
		m.rebuildView()
		return m, func() tea.Msg {
			mat, err := store.AddPage(ctx, url, bank.CategoryReading)
			return pageDoneMsg{material: mat, err: err}
		}

	case "/rm":
		if len(args) != 1 {
			m.notices = append(m.notices, "Usage: /rm <n>")
			break
		}
		n, err := strconv.Atoi(args[0])
		materials := m.store.Snapshot()
		if err != nil || n < 1 || n > len(materials) {
			m.notices = append(m.notices, fmt.Sprintf("No material #%s.", args[0]))
			break
		}
		m.store.Remove(materials[n-1].ID)

	case "/outline", "/patterns", "/rules":
		return m.runAnalysis(cmd)

	case "/answer":
		if m.hypo == "" {
			m.notices = append(m.notices, "Generate a hypothetical first.")
			break
		}
		return m.submitToTutor(exam.AnswerPrompt(m.hypo))

	case "/topics":
		m.notices = append(m.notices, "Popular topics: "+strings.Join(exam.PopularTopics, " · "))

	case "/clear":
		m.dialog.Clear()
		m.store.Clear()
		m.store.Seed()
		m.notices = append(m.notices, "Conversation cleared; knowledge bank reset to the seed reading.")

	default:
		m.notices = append(m.notices, "Unknown command: "+cmd+" (try /help)")
	}

	m.syncPlaceholder()
	m.rebuildView()
	return m, nil
}

func (m Model) runAnalysis(cmd string) (tea.Model, tea.Cmd) {
	if m.store.Len() == 0 {
		m.notices = append(m.notices, "The knowledge bank is empty; add materials first.")
		m.rebuildView()
		return m, nil
	}
	if m.busy {
		return m, nil
	}
	kind := analysis.Outline
	switch cmd {
	case "/patterns":
		kind = analysis.Patterns
	case "/rules":
		kind = analysis.Rules
	}
	m.busy = true
	m.modes.Set(mode.Editing)
	m.rebuildView()

	engine := m.engine
	ctx := m.ctx
	snapshot := m.store.Snapshot()
	return m, func() tea.Msg {
		out, err := engine.Analyze(ctx, snapshot, kind)
		return analysisDoneMsg{kind: kind, text: out, err: err}
	}
}
