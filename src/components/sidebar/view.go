package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionTitle  = lipgloss.NewStyle().Bold(true)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("236")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// View renders the document list with padding/margin, scrolled so the highlight stays visible.
func (s *SidebarModel) View() string {
	pad := "  "
	inner := max(s.Width-4, 8)
	var lines []string
	lines = append(lines, pad+sectionTitle.Render("Documents"))
	lines = append(lines, pad+strings.Repeat("-", inner))

	entries := s.Entries()
	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = s.renderEntry(i, e, inner)
	}

	visible := max(s.Height-len(lines)-1, 3)
	if s.Selected < s.offset {
		s.offset = s.Selected
	} else if s.Selected >= s.offset+visible {
		s.offset = s.Selected - visible + 1
	}
	end := min(s.offset+visible, len(rows))
	if s.offset > 0 {
		lines = append(lines, pad+mutedStyle.Render(fmt.Sprintf("  ↑ %d more", s.offset)))
	}
	lines = append(lines, rows[s.offset:end]...)
	if end < len(rows) {
		lines = append(lines, pad+mutedStyle.Render(fmt.Sprintf("  ↓ %d more", len(rows)-end)))
	}
	return strings.Join(lines, "\n")
}

func (s *SidebarModel) renderEntry(i int, e Entry, width int) string {
	pad := "  "
	label, active := "", false
	switch e.Kind {
	case EntryAllDocuments:
		label = "All Documents"
		active = s.ActiveID == ""
	case EntryDocument:
		label = e.Doc.Filename
		if label == "" {
			label = "Document " + e.Doc.ID.String()
		}
		active = e.Doc.ID == s.ActiveID
	case EntryUpload:
		label = "[+] Upload PDF"
	}
	label = truncate(label, width-4)

	marker := "  "
	style := lipgloss.NewStyle()
	if i == s.Selected {
		marker = "> "
		style = selectedStyle
		if s.Focused {
			style = focusedStyle
		}
	} else if active {
		style = activeStyle
	}
	if active {
		label = "● " + label
	}
	return pad + marker + style.Render(label)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 2 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
