package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ogurasousui/employee-directory/internal/core/session"
	"go.uber.org/zap"
)

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab":
			if m.loginRole == session.RoleAdmin {
				m.loginRole = session.RoleEmployee
			} else {
				m.loginRole = session.RoleAdmin
			}
			return m, nil
		case "enter":
			return m.login()
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) login() (tea.Model, tea.Cmd) {
	if err := m.session.Login(m.nameInput.Value(), m.loginRole); err != nil {
		m.loginErr = err
		return m, nil
	}
	m.loginErr = nil
	m.nameInput.Blur()

	user, _ := m.session.User()
	m.logger.Info("login", zap.String("user", user.Name), zap.String("role", string(user.Role)))

	m.screen = screenDirectory
	m.keys.setManage(m.session.CanManage())
	m.refresh()
	return m, nil
}

// logout はセッションと画面の状態をすべて初期化してログイン画面に戻ります。
func (m Model) logout() Model {
	if user, ok := m.session.User(); ok {
		m.logger.Info("logout", zap.String("user", user.Name))
	}
	m.session.Logout()

	m.screen = screenLogin
	m.searching = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.form = employeeForm{}
	m.deleting = nil
	m.loginErr = nil
	m.loginRole = session.RoleEmployee
	m.nameInput.SetValue(m.opts.DefaultUserName)
	m.nameInput.Focus()
	m.result = nil
	m.table.SetRows(nil)
	return m
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.opts.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render("Name"), m.nameInput.View()))
	b.WriteString("\n")

	roles := make([]string, 0, 2)
	for _, role := range []session.Role{session.RoleEmployee, session.RoleAdmin} {
		if role == m.loginRole {
			roles = append(roles, m.styles.Focused.Render("(•) "+role.Label()))
		} else {
			roles = append(roles, m.styles.Muted.Render("( ) "+role.Label()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render("Role"), strings.Join(roles, "  ")))
	b.WriteString("\n")

	if m.loginErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.loginErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab switch role · enter login · ctrl+c quit"))
	return m.styles.Panel.Render(b.String())
}
