package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

func TestChoice_Cycle(t *testing.T) {
	t.Parallel()

	c := newChoice(employee.Statuses, "")
	if c.value() != "" {
		t.Fatalf("expected unselected choice, got %q", c.value())
	}

	c.next()
	if c.value() != string(employee.StatusActive) {
		t.Fatalf("expected active, got %q", c.value())
	}
	c.next()
	c.next()
	if c.value() != string(employee.StatusActive) {
		t.Fatalf("expected wrap around to active, got %q", c.value())
	}
	c.prev()
	if c.value() != string(employee.StatusRetired) {
		t.Fatalf("expected wrap around to retired, got %q", c.value())
	}
}

func TestEmployeeForm_EditPrefillsFields(t *testing.T) {
	t.Parallel()

	e := &employee.Employee{
		ID:             "e-1",
		Name:           "Taro",
		Department:     employee.DepartmentPlanning,
		Position:       employee.PositionChief,
		Email:          "taro@example.com",
		Phone:          "090",
		EmploymentType: employee.EmploymentContract,
		HireDate:       "2019-01-01",
		Status:         employee.StatusRetired,
	}

	f := newEmployeeForm(e)
	if !f.isEdit() {
		t.Fatal("expected edit mode")
	}
	if f.Fields() != e.Fields() {
		t.Fatalf("expected form to carry existing fields, got %+v", f.Fields())
	}
}

func TestEmployeeForm_FocusWraps(t *testing.T) {
	t.Parallel()

	f := newEmployeeForm(nil)
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focus != fieldStatus {
		t.Fatalf("expected focus to wrap to status, got %d", f.focus)
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focus != fieldName {
		t.Fatalf("expected focus to wrap to name, got %d", f.focus)
	}
}

func TestEmployeeForm_ViewShowsChoiceValues(t *testing.T) {
	t.Parallel()

	f := newEmployeeForm(&employee.Employee{
		ID:             "e-1",
		Department:     employee.DepartmentPlanning,
		Position:       employee.PositionChief,
		EmploymentType: employee.EmploymentContract,
		Status:         employee.StatusRetired,
	})

	view := f.View(defaultStyles())
	for _, want := range []string{"Planning", "Chief", "contract", "retired"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in form view:\n%s", want, view)
		}
	}
}
