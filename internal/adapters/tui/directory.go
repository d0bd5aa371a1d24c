package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/core/session"
	"go.uber.org/zap"
)

var columnTitles = map[employee.SortField]string{
	employee.SortByName:           "Name",
	employee.SortByDepartment:     "Department",
	employee.SortByPosition:       "Position",
	employee.SortByEmail:          "Email",
	employee.SortByPhone:          "Phone",
	employee.SortByEmploymentType: "Employment",
	employee.SortByHireDate:       "Hire Date",
	employee.SortByStatus:         "Status",
	employee.SortByID:             "ID",
}

var columnWidths = map[employee.SortField]int{
	employee.SortByName:           18,
	employee.SortByDepartment:     18,
	employee.SortByPosition:       16,
	employee.SortByEmail:          26,
	employee.SortByPhone:          14,
	employee.SortByEmploymentType: 12,
	employee.SortByHireDate:       12,
	employee.SortByStatus:         9,
	employee.SortByID:             14,
}

// columns は列番号と並び順の印を付けた列定義を返します。
func columns(view *session.ViewState) []table.Column {
	cols := make([]table.Column, 0, len(employee.SortFields))
	for i, field := range employee.SortFields {
		title := fmt.Sprintf("%d %s", i+1, columnTitles[field])
		if view.SortField == field {
			if view.Direction == employee.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		cols = append(cols, table.Column{Title: title, Width: columnWidths[field]})
	}
	return cols
}

func rows(employees []*employee.Employee) []table.Row {
	out := make([]table.Row, 0, len(employees))
	for _, e := range employees {
		row := make(table.Row, 0, len(employee.SortFields))
		for _, field := range employee.SortFields {
			row = append(row, field.Key(e))
		}
		out = append(out, row)
	}
	return out
}

// refresh は現在の条件で一覧を取得し直し、表を更新します。
func (m *Model) refresh() {
	view := m.session.View()
	res, err := m.svc.ListEmployees(m.ctx, employee.ListEmployeesInput{Query: view.Query(), Page: view.Page})
	if err != nil {
		m.logger.Error("list employees failed", zap.Error(err))
		m.alert = "failed to load employees"
		return
	}
	if res.TotalPages > 0 && view.Page > res.TotalPages {
		view.SetPage(res.TotalPages)
		m.refresh()
		return
	}

	m.result = res
	m.table.SetColumns(columns(view))
	m.table.SetRows(rows(res.Employees))
	if m.table.Cursor() >= len(res.Employees) {
		m.table.SetCursor(max(0, len(res.Employees)-1))
	}
}

// selected は表で選択中のレコードを返します。
func (m Model) selected() *employee.Employee {
	if m.result == nil || len(m.result.Employees) == 0 {
		return nil
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.result.Employees) {
		return nil
	}
	return m.result.Employees[idx]
}

func (m Model) updateDirectory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	if m.searching {
		return m.updateSearch(keyMsg)
	}

	view := m.session.View()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Search):
		m.searching = true
		return m, m.searchInput.Focus()
	case key.Matches(keyMsg, m.keys.Department):
		view.CycleDepartment()
		m.refresh()
	case key.Matches(keyMsg, m.keys.Status):
		view.CycleStatus()
		m.refresh()
	case key.Matches(keyMsg, m.keys.Sort):
		n, err := strconv.Atoi(keyMsg.String())
		if err != nil || n < 1 || n > len(employee.SortFields) {
			return m, nil
		}
		view.ToggleSort(employee.SortFields[n-1])
		m.refresh()
	case key.Matches(keyMsg, m.keys.PrevPage):
		if view.Page > 1 {
			view.SetPage(view.Page - 1)
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.NextPage):
		if m.result != nil && view.Page < m.result.TotalPages {
			view.SetPage(view.Page + 1)
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Export):
		return m, m.exportCmd()
	case key.Matches(keyMsg, m.keys.SwitchRole):
		if err := m.session.ToggleRole(); err != nil {
			return m, nil
		}
		m.keys.setManage(m.session.CanManage())
		user, _ := m.session.User()
		m.logger.Info("role switched", zap.String("user", user.Name), zap.String("role", string(user.Role)))
	case key.Matches(keyMsg, m.keys.Logout):
		return m.logout(), nil
	case key.Matches(keyMsg, m.keys.Create):
		return m.openForm(nil)
	case key.Matches(keyMsg, m.keys.Edit):
		if target := m.selected(); target != nil {
			return m.openForm(target)
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if target := m.selected(); target != nil {
			m.deleting = target
			m.screen = screenConfirmDelete
		}
	case key.Matches(keyMsg, m.keys.Import):
		return m.openFilePicker()
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.session.View().SetSearch("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.View().SetSearch(m.searchInput.Value())
	m.refresh()
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		target := m.deleting
		m.deleting = nil
		m.screen = screenDirectory
		if target == nil || !m.session.CanManage() {
			return m, nil
		}
		if err := m.svc.DeleteEmployee(m.ctx, employee.DeleteEmployeeInput{ID: target.ID}); err != nil {
			m.logger.Error("delete employee failed", zap.String("id", target.ID), zap.Error(err))
			m.alert = "failed to delete employee"
			return m, nil
		}
		m.logger.Info("employee deleted", zap.String("id", target.ID))
		m.refresh()
	case "n", "N", "esc":
		m.deleting = nil
		m.screen = screenDirectory
	}
	return m, nil
}

func (m Model) openForm(target *employee.Employee) (tea.Model, tea.Cmd) {
	view := m.session.View()
	if target == nil {
		view.OpenCreateForm()
	} else {
		view.OpenEditForm(target)
	}
	m.form = newEmployeeForm(view.Editing)
	m.screen = screenForm
	return m, textinput.Blink
}

func (m *Model) closeForm() {
	m.session.View().CloseForm()
	m.form = employeeForm{}
	m.screen = screenDirectory
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render(m.opts.Title)
	user, ok := m.session.User()
	if !ok {
		return title + "\n"
	}
	who := fmt.Sprintf("%s  %s", m.styles.User.Render(user.Name), m.styles.Role.Render("["+user.Role.Label()+"]"))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", who) + "\n"
}

func (m Model) viewFilters() string {
	view := m.session.View()

	search := m.searchInput.View()
	if !m.searching && view.Search == "" {
		search = m.styles.Muted.Render("/ search name, email or phone")
	}

	department := "all"
	if view.Department != "" {
		department = string(view.Department)
	}
	status := "all"
	if view.Status != "" {
		status = string(view.Status)
	}

	return strings.Join([]string{
		search,
		m.styles.Muted.Render("department: ") + department,
		m.styles.Muted.Render("status: ") + status,
	}, "   ")
}

func (m Model) viewPagination() string {
	if m.result == nil {
		return ""
	}
	total := m.result.Total()
	if total == 0 {
		return m.styles.Pagination.Render("No matching employees found.")
	}
	start := (m.result.Page-1)*employee.PageSize + 1
	end := start + len(m.result.Employees) - 1
	return m.styles.Pagination.Render(fmt.Sprintf("%d-%d of %d · page %d / %d", start, end, total, m.result.Page, m.result.TotalPages))
}

func (m Model) viewDirectory() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.viewPagination())
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.deleting != nil {
		name = m.deleting.Name
	}
	return m.styles.Panel.Render(fmt.Sprintf("Delete %s? This cannot be undone.\n\n%s",
		m.styles.User.Render(name), m.styles.Muted.Render("y delete · n cancel")))
}
