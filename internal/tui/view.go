package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/exam"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/mode"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/render"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/tutor"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.busy {
		b.WriteString(SpinnerStyle.Render(m.spinner.View()) + NoticeStyle.Render(" Analyzing legal principles..."))
		b.WriteString("\n")
	}

	input := InputBorderStyle
	if m.textarea.Focused() {
		input = InputActiveStyle
	}
	b.WriteString(input.Render(m.textarea.View()))
	b.WriteString("\n")
	b.WriteString(NoticeStyle.Render("  AI Tutor can make mistakes. Verify with your actual casebook."))
	return b.String()
}

func (m Model) statusBar() string {
	label := "TUTOR SESSION"
	switch m.modes.Current() {
	case mode.Editing:
		label = "KNOWLEDGE BANK"
	case mode.ExamPractice:
		label = "EXAM SIMULATION LAB"
	}
	left := StatusModeStyle.Render(label)
	right := StatusBarStyle.Render(fmt.Sprintf("%s · %s · %d materials", m.provName, m.modelID, m.store.Len()))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// rebuildView repaints the viewport for the active mode.
func (m *Model) rebuildView() {
	switch m.modes.Current() {
	case mode.Editing:
		m.viewport.SetContent(m.bankView())
	case mode.ExamPractice:
		m.viewport.SetContent(m.examView())
	default:
		m.viewport.SetContent(m.chatView(""))
	}
}

// rebuildViewWithPending shows a just-submitted message before the
// background call has appended it to the conversation.
func (m *Model) rebuildViewWithPending(pending string) {
	m.viewport.SetContent(m.chatView(pending))
}

func (m Model) chatView(pending string) string {
	turns := m.dialog.Conversation().Turns()
	if len(turns) == 0 && pending == "" {
		return NoticeStyle.Render("\n  Ready to master Cybersecurity Law?\n\n  Upload lecture notes in the bank view (Tab), or just ask about the\n  CFAA, GDPR, or Data Breach Negligence.")
	}

	var b strings.Builder
	for _, t := range turns {
		b.WriteString(m.renderTurn(t))
		b.WriteString("\n\n")
	}
	if pending != "" {
		b.WriteString(UserLabelStyle.Render("You") + "\n")
		b.WriteString(UserMsgStyle.Render(pending))
		b.WriteString("\n\n")
	}
	b.WriteString(m.noticeBlock())
	return b.String()
}

func (m Model) renderTurn(t tutor.Turn) string {
	switch t.Role {
	case tutor.RoleUser:
		return UserLabelStyle.Render("You") + "\n" + UserMsgStyle.Render(t.Content)
	case tutor.RoleModel:
		return TutorLabelStyle.Render("Tutor") + "\n" + render.Render(t.Content, m.styles)
	default:
		return ErrorStyle.Render("! ") + NoticeStyle.Render(t.Content)
	}
}

func (m Model) bankView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("  Knowledge Bank"))
	b.WriteString("\n")
	b.WriteString(NoticeStyle.Render("  Upload Exams, Lectures (Audio), and Readings (PDFs). The AI strictly uses this bank."))
	b.WriteString("\n\n")
	b.WriteString("  Upload category: " + CategoryStyle.Render(string(m.currentCategory())) + NoticeStyle.Render("  (/cat to change)"))
	b.WriteString("\n\n")

	materials := m.store.Snapshot()
	b.WriteString(MaterialMetaStyle.Render(fmt.Sprintf("  ACTIVE MATERIALS (%d)", len(materials))))
	b.WriteString("\n")
	if len(materials) == 0 {
		b.WriteString(NoticeStyle.Render("  No materials in knowledge bank yet."))
		b.WriteString("\n")
	}
	for i, mat := range materials {
		b.WriteString(fmt.Sprintf("  %2d. %s %s %s\n",
			i+1,
			MaterialNameStyle.Render(mat.Name),
			CategoryStyle.Render(string(mat.Category)),
			MaterialMetaStyle.Render(materialMeta(mat)),
		))
	}

	b.WriteString("\n")
	b.WriteString(NoticeStyle.Render("  Analysis: /patterns — find patterns & top issues · /rules — master rule bank · /outline — class outline"))
	b.WriteString("\n\n")

	if m.analysis != "" {
		b.WriteString(TitleStyle.Render("  Analysis Results"))
		b.WriteString("\n\n")
		b.WriteString(render.Render(m.analysis, m.styles))
		b.WriteString("\n\n")
	}
	b.WriteString(m.noticeBlock())
	return b.String()
}

func materialMeta(mat bank.Material) string {
	if mat.Kind == bank.KindFile {
		return fmt.Sprintf("%s, %d KiB", mat.MIMEType, len(mat.Data)/1024)
	}
	return "note"
}

func (m Model) examView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("  Exam Simulation Lab"))
	b.WriteString("\n")
	b.WriteString(NoticeStyle.Render("  Generate hypothetical fact patterns to practice issue spotting and rule application."))
	b.WriteString("\n\n")
	b.WriteString(NoticeStyle.Render("  Type a target topic and press Enter. Popular: " + strings.Join(exam.PopularTopics, " · ")))
	b.WriteString("\n\n")

	if m.hypo != "" {
		b.WriteString(TutorLabelStyle.Render("  Hypothetical Fact Pattern"))
		b.WriteString("\n\n")
		b.WriteString(render.Render(m.hypo, m.styles))
		b.WriteString("\n\n")
		b.WriteString(NoticeStyle.Render("  /answer — reveal a model answer (IRAC) in the chat view"))
		b.WriteString("\n\n")
	}
	b.WriteString(m.noticeBlock())
	return b.String()
}

func (m Model) noticeBlock() string {
	if len(m.notices) == 0 {
		return ""
	}
	// Only the latest few notices stay visible.
	start := 0
	if len(m.notices) > 4 {
		start = len(m.notices) - 4
	}
	var b strings.Builder
	for _, n := range m.notices[start:] {
		b.WriteString(NoticeStyle.Render("  " + n))
		b.WriteString("\n")
	}
	return b.String()
}
