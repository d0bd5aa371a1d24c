package employee

import (
	"slices"
	"strings"
)

// PageSize は一覧の 1 ページあたりの件数です。
const PageSize = 10

// SortField は並び替え対象の列です。
type SortField int

const (
	SortNone SortField = iota
	SortByID
	SortByName
	SortByDepartment
	SortByPosition
	SortByEmail
	SortByPhone
	SortByEmploymentType
	SortByHireDate
	SortByStatus
)

// SortFields は並び替え可能な列を表示順で並べたものです。
var SortFields = []SortField{
	SortByName,
	SortByDepartment,
	SortByPosition,
	SortByEmail,
	SortByPhone,
	SortByEmploymentType,
	SortByHireDate,
	SortByStatus,
	SortByID,
}

var sortKeys = map[SortField]func(*Employee) string{
	SortByID:             func(e *Employee) string { return e.ID },
	SortByName:           func(e *Employee) string { return e.Name },
	SortByDepartment:     func(e *Employee) string { return string(e.Department) },
	SortByPosition:       func(e *Employee) string { return string(e.Position) },
	SortByEmail:          func(e *Employee) string { return e.Email },
	SortByPhone:          func(e *Employee) string { return e.Phone },
	SortByEmploymentType: func(e *Employee) string { return string(e.EmploymentType) },
	// ISO-8601 なので文字列順がそのまま日付順になります。
	SortByHireDate: func(e *Employee) string { return e.HireDate },
	SortByStatus:   func(e *Employee) string { return string(e.Status) },
}

var sortFieldNames = map[SortField]string{
	SortNone:             "",
	SortByID:             "id",
	SortByName:           "name",
	SortByDepartment:     "department",
	SortByPosition:       "position",
	SortByEmail:          "email",
	SortByPhone:          "phone",
	SortByEmploymentType: "employment_type",
	SortByHireDate:       "hire_date",
	SortByStatus:         "status",
}

// String は列名を返します。
func (f SortField) String() string {
	return sortFieldNames[f]
}

// ParseSortField は列名から SortField を返します。空文字は SortNone です。
func ParseSortField(raw string) (SortField, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for field, fieldName := range sortFieldNames {
		if fieldName == name {
			return field, true
		}
	}
	return SortNone, false
}

// Key は並び替えに使う値を返します。SortNone の場合は空文字です。
func (f SortField) Key(e *Employee) string {
	key, ok := sortKeys[f]
	if !ok {
		return ""
	}
	return key(e)
}

// SortDirection は並び順です。
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Flip は逆の並び順を返します。
func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Query は一覧の絞り込みと並び替えの条件です。空の条件は絞り込みを行いません。
type Query struct {
	Search     string
	Department Department
	Status     Status
	Sort       SortField
	Direction  SortDirection
}

// Matches はレコードが 3 条件すべてを満たすかを判定します。
func (q Query) Matches(e *Employee) bool {
	return q.matchesSearch(e) &&
		(q.Department == "" || e.Department == q.Department) &&
		(q.Status == "" || e.Status == q.Status)
}

func (q Query) matchesSearch(e *Employee) bool {
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.Email), term) ||
		strings.Contains(e.Phone, q.Search)
}

// Filter は条件に一致するレコードを元の順序のまま返します。
func Filter(employees []*Employee, q Query) []*Employee {
	filtered := make([]*Employee, 0, len(employees))
	for _, e := range employees {
		if q.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Sort は指定列で安定ソートします。同値のレコードは降順でも元の順序を保ちます。
func Sort(employees []*Employee, field SortField, dir SortDirection) {
	key, ok := sortKeys[field]
	if !ok {
		return
	}
	slices.SortStableFunc(employees, func(a, b *Employee) int {
		c := strings.Compare(key(a), key(b))
		if dir == Descending {
			return -c
		}
		return c
	})
}

// Apply は絞り込みと並び替えを行った新しいスライスを返します。
func Apply(employees []*Employee, q Query) []*Employee {
	result := Filter(employees, q)
	Sort(result, q.Sort, q.Direction)
	return result
}

// Paginate は 1 始まりのページを切り出します。範囲外のページは空スライスです。
func Paginate(employees []*Employee, page, size int) []*Employee {
	if page < 1 || size <= 0 || page > TotalPages(len(employees), size) {
		return []*Employee{}
	}
	start := (page - 1) * size
	end := min(start+size, len(employees))
	return employees[start:end]
}

// TotalPages は件数からページ数を計算します。
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
