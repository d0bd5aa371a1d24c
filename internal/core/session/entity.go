package session

// Role はセッションの権限です。画面上の操作可否を切り替えるだけで、認可の境界ではありません。
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Label は画面表示用の名称を返します。
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleEmployee:
		return "Employee"
	default:
		return string(r)
	}
}

// User はログイン中のユーザーです。
type User struct {
	Name string
	Role Role
}

func isValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleEmployee:
		return true
	default:
		return false
	}
}
