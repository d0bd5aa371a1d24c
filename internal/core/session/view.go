package session

import "github.com/ogurasousui/employee-directory/internal/core/employee"

// ViewState は検索条件、並び順、ページ、フォームの開閉状態を保持します。
type ViewState struct {
	Search     string
	Department employee.Department
	Status     employee.Status
	SortField  employee.SortField
	Direction  employee.SortDirection
	Page       int
	FormOpen   bool
	// Editing は編集中のレコードです。新規作成中は nil です。
	Editing *employee.Employee
}

func newViewState() ViewState {
	return ViewState{Page: 1}
}

// SetSearch は検索語を設定し 1 ページ目に戻します。
func (v *ViewState) SetSearch(term string) {
	if v.Search == term {
		return
	}
	v.Search = term
	v.Page = 1
}

// SetDepartment は部署の絞り込みを設定します。空文字で解除します。
func (v *ViewState) SetDepartment(d employee.Department) {
	if v.Department == d {
		return
	}
	v.Department = d
	v.Page = 1
}

// SetStatus は在籍状態の絞り込みを設定します。空文字で解除します。
func (v *ViewState) SetStatus(st employee.Status) {
	if v.Status == st {
		return
	}
	v.Status = st
	v.Page = 1
}

// ToggleSort は同じ列なら並び順を反転し、別の列なら昇順で並べ替えます。いずれも 1 ページ目に戻します。
func (v *ViewState) ToggleSort(field employee.SortField) {
	if field == employee.SortNone {
		return
	}
	if v.SortField == field {
		v.Direction = v.Direction.Flip()
	} else {
		v.SortField = field
		v.Direction = employee.Ascending
	}
	v.Page = 1
}

// SetPage は表示ページを設定します。範囲外のページは空の一覧になります。
func (v *ViewState) SetPage(page int) {
	v.Page = page
}

// OpenCreateForm は新規作成フォームを開きます。
func (v *ViewState) OpenCreateForm() {
	v.FormOpen = true
	v.Editing = nil
}

// OpenEditForm は指定レコードの編集フォームを開きます。
func (v *ViewState) OpenEditForm(e *employee.Employee) {
	v.FormOpen = true
	v.Editing = e.Clone()
}

// CloseForm はフォームを閉じ、編集対象を破棄します。
func (v *ViewState) CloseForm() {
	v.FormOpen = false
	v.Editing = nil
}

// Query は現在の検索条件を返します。
func (v *ViewState) Query() employee.Query {
	return employee.Query{
		Search:     v.Search,
		Department: v.Department,
		Status:     v.Status,
		Sort:       v.SortField,
		Direction:  v.Direction,
	}
}

// CycleDepartment は部署の絞り込みを「なし → 各部署 → なし」の順に切り替えます。
func (v *ViewState) CycleDepartment() {
	v.SetDepartment(nextOf(employee.Departments, v.Department))
}

// CycleStatus は在籍状態の絞り込みを順に切り替えます。
func (v *ViewState) CycleStatus() {
	v.SetStatus(nextOf(employee.Statuses, v.Status))
}

func nextOf[T comparable](values []T, current T) T {
	var zero T
	if current == zero {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return zero
		}
	}
	return zero
}
