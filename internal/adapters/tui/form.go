package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

type formField int

const (
	fieldName formField = iota
	fieldDepartment
	fieldPosition
	fieldEmail
	fieldPhone
	fieldEmploymentType
	fieldHireDate
	fieldStatus
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:           "Name",
	fieldDepartment:     "Department",
	fieldPosition:       "Position",
	fieldEmail:          "Email",
	fieldPhone:          "Phone",
	fieldEmploymentType: "Employment Type",
	fieldHireDate:       "Hire Date",
	fieldStatus:         "Status",
}

// choice は選択肢から 1 つを選ぶ入力欄です。index が -1 の場合は未選択です。
type choice struct {
	options []string
	index   int
}

func newChoice[T ~string](options []T, current T) choice {
	c := choice{options: make([]string, 0, len(options)), index: -1}
	for i, o := range options {
		c.options = append(c.options, string(o))
		if o == current {
			c.index = i
		}
	}
	return c
}

func (c *choice) next() {
	c.index = (c.index + 1) % len(c.options)
}

func (c *choice) prev() {
	if c.index <= 0 {
		c.index = len(c.options) - 1
		return
	}
	c.index--
}

func (c choice) value() string {
	if c.index < 0 {
		return ""
	}
	return c.options[c.index]
}

// employeeForm は社員の作成・編集フォームです。
type employeeForm struct {
	// editingID が空の場合は新規作成です。
	editingID string
	focus     formField

	inputs  map[formField]*textinput.Model
	choices map[formField]*choice

	err error
}

func newEmployeeForm(editing *employee.Employee) employeeForm {
	var fields employee.Fields
	if editing != nil {
		fields = editing.Fields()
	} else {
		fields = employee.Fields{
			EmploymentType: employee.EmploymentFullTime,
			Status:         employee.StatusActive,
		}
	}

	f := employeeForm{
		inputs: map[formField]*textinput.Model{
			fieldName:     newFormInput("Taro Yamada", fields.Name),
			fieldEmail:    newFormInput("taro@example.com", fields.Email),
			fieldPhone:    newFormInput("090-1234-5678", fields.Phone),
			fieldHireDate: newFormInput("YYYY-MM-DD", fields.HireDate),
		},
		choices: map[formField]*choice{
			fieldDepartment:     ptr(newChoice(employee.Departments, fields.Department)),
			fieldPosition:       ptr(newChoice(employee.Positions, fields.Position)),
			fieldEmploymentType: ptr(newChoice(employee.EmploymentTypes, fields.EmploymentType)),
			fieldStatus:         ptr(newChoice(employee.Statuses, fields.Status)),
		},
	}
	if editing != nil {
		f.editingID = editing.ID
	}
	f.inputs[fieldName].Focus()
	return f
}

func newFormInput(placeholder, value string) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = ""
	ti.SetValue(value)
	return &ti
}

func ptr[T any](v T) *T {
	return &v
}

func (f employeeForm) isEdit() bool {
	return f.editingID != ""
}

// Fields は入力値を社員属性として返します。正規化と検証はサービス側で行います。
func (f employeeForm) Fields() employee.Fields {
	return employee.Fields{
		Name:           f.inputs[fieldName].Value(),
		Department:     employee.Department(f.choices[fieldDepartment].value()),
		Position:       employee.Position(f.choices[fieldPosition].value()),
		Email:          f.inputs[fieldEmail].Value(),
		Phone:          f.inputs[fieldPhone].Value(),
		EmploymentType: employee.EmploymentType(f.choices[fieldEmploymentType].value()),
		HireDate:       f.inputs[fieldHireDate].Value(),
		Status:         employee.Status(f.choices[fieldStatus].value()),
	}
}

func (f *employeeForm) setFocus(field formField) {
	if in, ok := f.inputs[f.focus]; ok {
		in.Blur()
	}
	f.focus = (field + fieldCount) % fieldCount
	if in, ok := f.inputs[f.focus]; ok {
		in.Focus()
	}
}

// Update はフォーム内の移動と入力を処理します。保存と取消は呼び出し側で扱います。
func (f employeeForm) Update(msg tea.Msg) (employeeForm, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return f, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return f, nil
		}

		if c, ok := f.choices[f.focus]; ok {
			switch msg.String() {
			case "right", "l", " ":
				c.next()
			case "left", "h":
				c.prev()
			}
			return f, nil
		}
	}

	in, ok := f.inputs[f.focus]
	if !ok {
		return f, nil
	}
	updated, cmd := in.Update(msg)
	*in = updated
	return f, cmd
}

func (f employeeForm) View(st styles) string {
	var b strings.Builder

	title := "New employee"
	if f.isEdit() {
		title = "Edit employee"
	}
	b.WriteString(st.User.Render(title))
	b.WriteString("\n\n")

	for field := formField(0); field < fieldCount; field++ {
		label := st.Label.Render(fieldLabels[field])
		if field == f.focus {
			label = st.Label.Foreground(accent).Render("> " + fieldLabels[field])
		}

		var value string
		if in, ok := f.inputs[field]; ok {
			value = in.View()
		} else {
			value = renderChoice(st, *f.choices[field], field == f.focus)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, value))
		b.WriteString("\n")
	}

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(st.Error.Render(f.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Muted.Render("tab/↑↓ move · ←→ choose · ctrl+s save · esc cancel"))
	return st.Panel.Render(b.String())
}

func renderChoice(st styles, c choice, focused bool) string {
	value := c.value()
	if value == "" {
		value = st.Muted.Render("(select)")
	}
	if focused {
		return st.Focused.Render(fmt.Sprintf("‹ %s ›", value))
	}
	return st.Value.Render(value)
}
