package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/adapters/employeecsv"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"go.uber.org/zap"
)

const (
	alertImportFailed   = "failed to import CSV file"
	alertImported       = "imported %d employee records"
	alertExported       = "exported %d employee records to %s"
	alertExportFailed   = "failed to export CSV file"
	alertNotFound       = "the employee no longer exists"
	alertNotCSV         = "%s is not a CSV file"
	minimumPickerHeight = 5
)

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.session.CanManage() {
		m.closeForm()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "enter", "ctrl+s":
			return m.saveForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	fields := m.form.Fields()

	if !m.form.isEdit() {
		created, err := m.svc.CreateEmployee(m.ctx, employee.CreateEmployeeInput{Fields: fields})
		if err != nil {
			m.form.err = err
			return m, nil
		}
		m.logger.Info("employee created", zap.String("id", created.ID))
		m.closeForm()
		m.refresh()
		return m, nil
	}

	id := m.form.editingID
	if _, err := m.svc.UpdateEmployee(m.ctx, employee.UpdateEmployeeInput{ID: id, Fields: fields}); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			m.logger.Warn("update target missing", zap.String("id", id))
			m.closeForm()
			m.alert = alertNotFound
			m.refresh()
			return m, nil
		}
		m.form.err = err
		return m, nil
	}
	m.logger.Info("employee updated", zap.String("id", id))
	m.closeForm()
	m.refresh()
	return m, nil
}

func pickerHeight(windowHeight int) int {
	return max(minimumPickerHeight, windowHeight-8)
}

func (m Model) openFilePicker() (tea.Model, tea.Cmd) {
	fp := filepicker.New()
	fp.AllowedTypes = []string{employeecsv.Extension}
	fp.CurrentDirectory = m.opts.ImportDir
	if fp.CurrentDirectory == "" {
		fp.CurrentDirectory = "."
	}
	if m.height > 0 {
		fp.Height = pickerHeight(m.height)
	}

	m.picker = fp
	m.screen = screenFilePicker
	return m, m.picker.Init()
}

func (m Model) updateFilePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.session.CanManage() {
		m.screen = screenDirectory
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.screen = screenDirectory
		m.alert = employeecsv.ErrNoFileSelected.Error()
		m.logger.Debug("import cancelled")
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.screen = screenDirectory
		return m, tea.Batch(cmd, m.importCmd(path))
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.alert = fmt.Sprintf(alertNotCSV, filepath.Base(path))
	}
	return m, cmd
}

// importCmd はファイルを読み込みます。ストアへの追加は結果を受け取った Update で行います。
func (m Model) importCmd(path string) tea.Cmd {
	importer := m.importer
	return func() tea.Msg {
		employees, err := importer.ReadFile(path)
		return importResultMsg{path: path, employees: employees, err: err}
	}
}

func (m Model) handleImportResult(msg importResultMsg) Model {
	if errors.Is(msg.err, employeecsv.ErrNoFileSelected) {
		m.alert = employeecsv.ErrNoFileSelected.Error()
		return m
	}
	if msg.err != nil {
		m.logger.Error("import failed", zap.String("path", msg.path), zap.Error(msg.err))
		m.alert = alertImportFailed
		return m
	}
	if !m.session.CanManage() {
		m.logger.Warn("import discarded after role change", zap.String("path", msg.path))
		return m
	}

	res, err := m.svc.ImportEmployees(m.ctx, employee.ImportEmployeesInput{Employees: msg.employees})
	if err != nil {
		m.logger.Error("import failed", zap.String("path", msg.path), zap.Error(err))
		m.alert = alertImportFailed
		return m
	}

	m.logger.Info("employees imported", zap.String("path", msg.path), zap.Int("count", len(res.Imported)))
	m.alert = fmt.Sprintf(alertImported, len(res.Imported))
	m.refresh()
	return m
}

// exportCmd は現在の絞り込みと並び順の全件を書き出します。
func (m Model) exportCmd() tea.Cmd {
	res, err := m.svc.ListEmployees(m.ctx, employee.ListEmployeesInput{Query: m.session.View().Query(), Page: 1})
	if err != nil {
		return func() tea.Msg {
			return exportResultMsg{err: err}
		}
	}

	dir, now, matched := m.opts.ExportDir, m.opts.Now(), res.Matched
	return func() tea.Msg {
		path, err := employeecsv.Export(dir, now, matched)
		return exportResultMsg{path: path, count: len(matched), err: err}
	}
}

func (m Model) handleExportResult(msg exportResultMsg) Model {
	if msg.err != nil {
		m.logger.Error("export failed", zap.Error(msg.err))
		m.alert = alertExportFailed
		return m
	}
	m.logger.Info("employees exported", zap.String("path", msg.path), zap.Int("count", msg.count))
	m.alert = fmt.Sprintf(alertExported, msg.count, msg.path)
	return m
}

func (m Model) viewFilePicker() string {
	return m.styles.Panel.Render(
		m.styles.User.Render("Import CSV") + "\n" +
			m.styles.Muted.Render(m.picker.CurrentDirectory) + "\n\n" +
			m.picker.View() + "\n" +
			m.styles.Muted.Render("enter select · esc cancel"))
}
