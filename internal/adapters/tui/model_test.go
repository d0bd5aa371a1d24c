package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/adapters/employeecsv"
	"github.com/ogurasousui/employee-directory/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/core/session"
)

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, seed int) (Model, *memory.EmployeeRepository) {
	t.Helper()

	repo := memory.NewEmployeeRepository(nil)
	records := make([]*employee.Employee, 0, seed)
	for i := 0; i < seed; i++ {
		records = append(records, &employee.Employee{
			ID:             fmt.Sprintf("e-%02d", i+1),
			Name:           fmt.Sprintf("Employee %02d", i+1),
			Department:     employee.DepartmentSales,
			Position:       employee.PositionStaff,
			Email:          fmt.Sprintf("e%02d@example.com", i+1),
			Phone:          fmt.Sprintf("090-0000-%04d", i+1),
			EmploymentType: employee.EmploymentFullTime,
			HireDate:       "2020-04-01",
			Status:         employee.StatusActive,
		})
	}
	if _, err := repo.BulkImport(context.Background(), records); err != nil {
		t.Fatalf("failed to seed repository: %v", err)
	}

	m := New(context.Background(), employee.NewService(repo), nil, Options{
		ExportDir: t.TempDir(),
		ImportDir: t.TempDir(),
		Now:       func() time.Time { return fixedNow },
	})
	return m, repo
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = send(t, m, msg)
	}
	return m
}

func loginAs(t *testing.T, m Model, name string, role session.Role) Model {
	t.Helper()

	m = press(t, m, name)
	if role == session.RoleAdmin {
		m = press(t, m, "tab")
	}
	m = press(t, m, "enter")
	if m.screen != screenDirectory {
		t.Fatalf("expected directory screen after login, got %v (err %v)", m.screen, m.loginErr)
	}
	return m
}

func TestLogin_RequiresName(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 0)
	m = press(t, m, "enter")

	if m.screen != screenLogin {
		t.Fatalf("expected to stay on login screen, got %v", m.screen)
	}
	if !errors.Is(m.loginErr, session.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", m.loginErr)
	}
}

func TestLogin_DefaultUserName(t *testing.T) {
	t.Parallel()

	m := New(context.Background(), employee.NewService(memory.NewEmployeeRepository(nil)), nil, Options{DefaultUserName: "Taro"})
	m = press(t, m, "enter")

	user, ok := m.session.User()
	if !ok || user.Name != "Taro" || user.Role != session.RoleEmployee {
		t.Fatalf("unexpected user %+v (ok=%v)", user, ok)
	}
}

func TestRoleGating(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 3)
	m = loginAs(t, m, "Hanako", session.RoleEmployee)

	for _, k := range []string{"n", "e", "D", "i"} {
		m = press(t, m, k)
		if m.screen != screenDirectory {
			t.Fatalf("expected %q to be ignored for employee role, got screen %v", k, m.screen)
		}
	}
	if strings.Contains(m.View(), "import") {
		t.Fatalf("expected admin actions to be hidden from help")
	}

	m = press(t, m, "r")
	if !m.session.CanManage() {
		t.Fatalf("expected role switch to admin")
	}
	if !strings.Contains(m.View(), "import") {
		t.Fatalf("expected admin actions to be listed in help")
	}

	m = press(t, m, "n")
	if m.screen != screenForm || !m.session.View().FormOpen {
		t.Fatalf("expected create form to open for admin")
	}
}

func TestCreateEmployeeViaForm(t *testing.T) {
	t.Parallel()

	m, repo := newTestModel(t, 0)
	m = loginAs(t, m, "Admin", session.RoleAdmin)
	m = press(t, m, "n")

	m = press(t, m, "enter")
	if m.screen != screenForm || !errors.Is(m.form.err, employee.ErrInvalidName) {
		t.Fatalf("expected validation error to keep the form open, got screen %v err %v", m.screen, m.form.err)
	}

	m = press(t, m,
		"Taro Yamada", "tab",
		"right", "tab", // Sales
		"right", "tab", // Director
		"taro@example.com", "tab",
		"tab", // phone
		"tab", // employment type
		"2024-04-01", "tab",
		"enter",
	)

	if m.screen != screenDirectory {
		t.Fatalf("expected form to close after save, got %v (err %v)", m.screen, m.form.err)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 stored record, got %d", repo.Len())
	}
	got := m.result.Employees[0]
	if got.Name != "Taro Yamada" || got.Department != employee.DepartmentSales || got.Position != employee.PositionDirector {
		t.Fatalf("unexpected created record %+v", got)
	}
	if got.EmploymentType != employee.EmploymentFullTime || got.Status != employee.StatusActive {
		t.Fatalf("expected form defaults, got %q %q", got.EmploymentType, got.Status)
	}
}

func TestEditEmployeeViaForm(t *testing.T) {
	t.Parallel()

	m, repo := newTestModel(t, 2)
	m = loginAs(t, m, "Admin", session.RoleAdmin)

	m = press(t, m, "down", "e")
	if m.screen != screenForm || m.form.editingID != "e-02" {
		t.Fatalf("expected edit form for e-02, got screen %v id %q", m.screen, m.form.editingID)
	}

	// 在籍状態を retired に変更する
	for i := 0; i < int(fieldStatus); i++ {
		m = press(t, m, "tab")
	}
	m = press(t, m, "right", "enter")

	updated, err := repo.FindByID(context.Background(), "e-02")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if updated.Status != employee.StatusRetired || updated.Name != "Employee 02" {
		t.Fatalf("unexpected updated record %+v", updated)
	}
	if m.session.View().FormOpen {
		t.Fatalf("expected form state to be closed")
	}
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	m, repo := newTestModel(t, 2)
	m = loginAs(t, m, "Admin", session.RoleAdmin)

	m = press(t, m, "D", "n")
	if repo.Len() != 2 || m.screen != screenDirectory {
		t.Fatalf("expected cancel to keep records")
	}

	m = press(t, m, "D", "y")
	if repo.Len() != 1 {
		t.Fatalf("expected 1 record after delete, got %d", repo.Len())
	}
	if m.result.Employees[0].ID != "e-02" {
		t.Fatalf("expected e-01 to be deleted, got %+v", m.result.Employees)
	}
}

func TestSortToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 12)
	m = loginAs(t, m, "Hanako", session.RoleEmployee)
	m = press(t, m, "right")

	m = press(t, m, "1")
	view := m.session.View()
	if view.SortField != employee.SortByName || view.Direction != employee.Ascending || view.Page != 1 {
		t.Fatalf("expected ascending name sort on page 1, got %+v", view)
	}
	if m.result.Employees[0].Name != "Employee 01" {
		t.Fatalf("unexpected first row %s", m.result.Employees[0].Name)
	}

	m = press(t, m, "1")
	if view.Direction != employee.Descending {
		t.Fatalf("expected direction to flip")
	}
	if m.result.Employees[0].Name != "Employee 12" {
		t.Fatalf("unexpected first row %s", m.result.Employees[0].Name)
	}
	if !strings.Contains(m.View(), "1 Name ▼") {
		t.Fatalf("expected sort indicator in header")
	}

	m = press(t, m, "7")
	if view.SortField != employee.SortByHireDate || view.Direction != employee.Ascending {
		t.Fatalf("expected new field to start ascending, got %+v", view)
	}
}

func TestPagination(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 23)
	m = loginAs(t, m, "Hanako", session.RoleEmployee)

	m = press(t, m, "right", "right", "right")
	if m.result.Page != 3 || len(m.result.Employees) != 3 {
		t.Fatalf("expected last page with 3 rows, got page %d rows %d", m.result.Page, len(m.result.Employees))
	}
	if !strings.Contains(m.View(), "21-23 of 23") {
		t.Fatalf("expected pagination summary in view")
	}

	m = press(t, m, "left")
	if m.result.Page != 2 {
		t.Fatalf("expected page 2, got %d", m.result.Page)
	}

	m = press(t, m, "/", "Employee 2")
	if m.session.View().Page != 1 {
		t.Fatalf("expected search to reset page")
	}
	if m.result.Total() != 4 {
		t.Fatalf("expected 4 matches for search, got %d", m.result.Total())
	}

	m = press(t, m, "esc")
	if m.searching || m.session.View().Search != "" || m.result.Total() != 23 {
		t.Fatalf("expected esc to clear search")
	}
}

func TestFacetCycling(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 3)
	m = loginAs(t, m, "Hanako", session.RoleEmployee)

	m = press(t, m, "s")
	if m.session.View().Status != employee.StatusActive || m.result.Total() != 3 {
		t.Fatalf("expected active facet, got %q with %d rows", m.session.View().Status, m.result.Total())
	}
	m = press(t, m, "s")
	if m.result.Total() != 0 || !strings.Contains(m.View(), "No matching employees found.") {
		t.Fatalf("expected no retired employees")
	}

	m = press(t, m, "d", "d")
	if m.session.View().Department != employee.DepartmentEngineering {
		t.Fatalf("expected second department, got %q", m.session.View().Department)
	}
}

func TestImport_Cancel(t *testing.T) {
	t.Parallel()

	m, repo := newTestModel(t, 1)
	m = loginAs(t, m, "Admin", session.RoleAdmin)

	m = press(t, m, "i")
	if m.screen != screenFilePicker {
		t.Fatalf("expected file picker, got %v", m.screen)
	}

	m = press(t, m, "esc")
	if m.screen != screenDirectory || m.alert != "no file selected" {
		t.Fatalf("expected cancel alert, got screen %v alert %q", m.screen, m.alert)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected store unchanged, got %d records", repo.Len())
	}

	m = press(t, m, "x")
	if m.alert != "" {
		t.Fatalf("expected any key to dismiss alert")
	}
}

func TestImport_Success(t *testing.T) {
	t.Parallel()

	m, repo := newTestModel(t, 1)
	m = loginAs(t, m, "Admin", session.RoleAdmin)

	path := filepath.Join(t.TempDir(), "employees.csv")
	content := "ID,Name,Department,Position,Email,Phone,Employment Type,Hire Date,Status\n" +
		`e-01,"Dup","Sales","Staff",dup@example.com,,,2020-01-01,` + "\n" +
		`,"New","Planning","Chief",new@example.com,080,contract,2021-01-01,retired` + "\n" +
		"broken,row\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	msg := m.importCmd(path)()
	m, _ = send(t, m, msg)

	if m.alert != "imported 2 employee records" {
		t.Fatalf("unexpected alert %q", m.alert)
	}
	if repo.Len() != 3 || m.result.Total() != 3 {
		t.Fatalf("expected 3 records, got store %d view %d", repo.Len(), m.result.Total())
	}
}

func TestImport_ReadFailure(t *testing.T) {
	t.Parallel()

	m, repo := newTestModel(t, 1)
	m = loginAs(t, m, "Admin", session.RoleAdmin)

	msg := m.importCmd(filepath.Join(t.TempDir(), "missing.csv"))()
	m, _ = send(t, m, msg)

	if m.alert != "failed to import CSV file" {
		t.Fatalf("unexpected alert %q", m.alert)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected store unchanged")
	}
}

func TestImport_DiscardedAfterRoleChange(t *testing.T) {
	t.Parallel()

	m, repo := newTestModel(t, 0)
	m = loginAs(t, m, "Admin", session.RoleAdmin)
	m = press(t, m, "r")

	m, _ = send(t, m, importResultMsg{employees: []*employee.Employee{{Name: "late"}}})
	if repo.Len() != 0 {
		t.Fatalf("expected import to be discarded for employee role")
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 12)
	m = loginAs(t, m, "Hanako", session.RoleEmployee)
	m = press(t, m, "/", "Employee 1", "enter")

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Fatal("expected export command")
	}
	m, _ = send(t, m, cmd())

	want := filepath.Join(m.opts.ExportDir, "employees_2026-10-16.csv")
	if m.alert != fmt.Sprintf("exported 3 employee records to %s", want) {
		t.Fatalf("unexpected alert %q", m.alert)
	}

	got, err := employeecsv.NewImporter(nil).ReadFile(want)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected only filtered rows to be exported, got %d", len(got))
	}
}

func TestLogoutResetsState(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 12)
	m = loginAs(t, m, "Admin", session.RoleAdmin)
	m = press(t, m, "/", "Employee", "enter", "s", "1", "right")

	m = press(t, m, "L")
	if m.screen != screenLogin || m.session.Authenticated() {
		t.Fatalf("expected logged out state")
	}
	view := m.session.View()
	if view.Search != "" || view.Status != "" || view.Page != 1 || view.FormOpen {
		t.Fatalf("expected view state reset, got %+v", view)
	}
	if m.searchInput.Value() != "" {
		t.Fatalf("expected search input cleared")
	}
}
