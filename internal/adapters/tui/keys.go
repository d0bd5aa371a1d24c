package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap は一覧画面のキー割り当てです。
type keyMap struct {
	Search     key.Binding
	Department key.Binding
	Status     key.Binding
	Sort       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Export     key.Binding
	SwitchRole key.Binding
	Logout     key.Binding
	Quit       key.Binding

	// 以下は管理者のみ
	Create key.Binding
	Edit   key.Binding
	Delete key.Binding
	Import key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Department: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "department")),
		Status:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Sort:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Export:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		SwitchRole: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "switch role")),
		Logout:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Create:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
		Import:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
	}
}

// setManage は管理者向けのキーを有効・無効にします。無効なキーは反応せず、ヘルプにも表示されません。
func (k *keyMap) setManage(enabled bool) {
	k.Create.SetEnabled(enabled)
	k.Edit.SetEnabled(enabled)
	k.Delete.SetEnabled(enabled)
	k.Import.SetEnabled(enabled)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Search, k.Department, k.Status, k.Sort, k.PrevPage, k.NextPage,
		k.Create, k.Edit, k.Delete, k.Import, k.Export,
		k.SwitchRole, k.Logout, k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
