// Package tui は社員名簿の端末画面を提供します。
// ストアの更新は Update の中だけで行い、ファイルの読み書きは tea.Cmd で実行します。
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/adapters/employeecsv"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/core/session"
	"go.uber.org/zap"
)

type screen int

const (
	screenLogin screen = iota
	screenDirectory
	screenForm
	screenConfirmDelete
	screenFilePicker
)

// Options は画面の表示と入出力先の設定です。
type Options struct {
	Title           string
	DefaultUserName string
	ExportDir       string
	ImportDir       string
	Now             func() time.Time
	Logger          *zap.Logger
}

// importResultMsg は CSV 読み込みの結果です。
type importResultMsg struct {
	path      string
	employees []*employee.Employee
	err       error
}

// exportResultMsg は CSV 書き出しの結果です。
type exportResultMsg struct {
	path  string
	count int
	err   error
}

// Model は bubbletea の画面モデルです。
type Model struct {
	ctx      context.Context
	svc      employee.UseCase
	importer *employeecsv.Importer
	session  *session.Session
	opts     Options
	logger   *zap.Logger

	screen screen
	width  int
	height int

	keys   keyMap
	help   help.Model
	styles styles

	nameInput textinput.Model
	loginRole session.Role
	loginErr  error

	searchInput textinput.Model
	searching   bool
	table       table.Model
	result      *employee.ListEmployeesResult

	form     employeeForm
	deleting *employee.Employee
	picker   filepicker.Model

	// alert は次のキー入力まで表示するメッセージです。
	alert string
}

// New は Model を生成します。
func New(ctx context.Context, svc employee.UseCase, importer *employeecsv.Importer, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Title == "" {
		opts.Title = "Employee Directory"
	}
	if importer == nil {
		importer = employeecsv.NewImporter(nil)
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Your name"
	nameInput.CharLimit = 50
	nameInput.Width = 30
	nameInput.SetValue(opts.DefaultUserName)
	nameInput.Focus()

	searchInput := textinput.New()
	searchInput.Placeholder = "name, email or phone"
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 50
	searchInput.Width = 30

	sess := session.New()
	t := table.New(
		table.WithColumns(columns(sess.View())),
		table.WithFocused(true),
		table.WithHeight(employee.PageSize+1),
	)

	return Model{
		ctx:         ctx,
		svc:         svc,
		importer:    importer,
		session:     sess,
		opts:        opts,
		logger:      opts.Logger,
		screen:      screenLogin,
		keys:        newKeyMap(),
		help:        help.New(),
		styles:      defaultStyles(),
		nameInput:   nameInput,
		loginRole:   session.RoleEmployee,
		searchInput: searchInput,
		table:       t,
	}
}

// Init は初期コマンドを返します。
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update はメッセージを処理します。
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.picker.Height = pickerHeight(msg.Height)
		return m, nil
	case importResultMsg:
		return m.handleImportResult(msg), nil
	case exportResultMsg:
		return m.handleExportResult(msg), nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDirectory:
		return m.updateDirectory(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(msg)
	case screenFilePicker:
		return m.updateFilePicker(msg)
	}
	return m, nil
}

// View は画面を描画します。
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.viewLogin()
	case screenForm:
		body = m.viewHeader() + "\n" + m.form.View(m.styles)
	case screenConfirmDelete:
		body = m.viewHeader() + "\n" + m.viewConfirmDelete()
	case screenFilePicker:
		body = m.viewHeader() + "\n" + m.viewFilePicker()
	default:
		body = m.viewDirectory()
	}

	if m.alert != "" {
		body += "\n\n" + m.styles.Alert.Render(m.alert+"\n\n"+m.styles.Muted.Render("press any key"))
	}
	return body
}
