package session

import "strings"

// Session はログイン中のユーザーと画面の状態を保持します。
// 単一の画面ループが所有する前提で、並行利用は想定していません。
type Session struct {
	user *User
	view ViewState
}

// New はログアウト状態の Session を生成します。
func New() *Session {
	return &Session{view: newViewState()}
}

// Login は表示名と権限でログインします。
func (s *Session) Login(name string, role Role) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrInvalidName
	}
	if !isValidRole(role) {
		return ErrInvalidRole
	}

	s.user = &User{Name: trimmed, Role: role}
	s.view = newViewState()
	return nil
}

// Logout はユーザーを破棄し、画面状態をすべて初期化します。
func (s *Session) Logout() {
	s.user = nil
	s.view = newViewState()
}

// User はログイン中のユーザーを返します。
func (s *Session) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Authenticated はログイン済みかを返します。
func (s *Session) Authenticated() bool {
	return s.user != nil
}

// SwitchRole はログイン中ユーザーの権限を切り替えます。
func (s *Session) SwitchRole(role Role) error {
	if s.user == nil {
		return ErrNotAuthenticated
	}
	if !isValidRole(role) {
		return ErrInvalidRole
	}
	s.user.Role = role
	if role != RoleAdmin {
		s.view.CloseForm()
	}
	return nil
}

// ToggleRole は admin と employee を入れ替えます。
func (s *Session) ToggleRole() error {
	if s.user == nil {
		return ErrNotAuthenticated
	}
	if s.user.Role == RoleAdmin {
		return s.SwitchRole(RoleEmployee)
	}
	return s.SwitchRole(RoleAdmin)
}

// CanManage は作成・更新・削除・取り込みの操作を表示してよいかを返します。
func (s *Session) CanManage() bool {
	return s.user != nil && s.user.Role == RoleAdmin
}

// View は画面状態を返します。
func (s *Session) View() *ViewState {
	return &s.view
}
