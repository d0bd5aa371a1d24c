// Package employeecsv は社員一覧の CSV 入出力を扱います。
//
// 出力形式は既存ファイルとの互換性を優先しており、RFC 4180 には従いません。
// 氏名・所属・役職のみをダブルクォートで囲み、区切り文字や引用符のエスケープは行いません。
// 読み込み側もカンマで単純に分割するため、カンマや引用符を含む値は往復で保持されません。
package employeecsv

import (
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"golang.org/x/text/encoding/unicode"
)

// Columns は CSV の列数です。
const Columns = 9

// Header はヘッダー行の列名です。
var Header = []string{"ID", "Name", "Department", "Position", "Email", "Phone", "Employment Type", "Hire Date", "Status"}

const bom = "\ufeff"

const (
	defaultEmploymentType = employee.EmploymentFullTime
	defaultStatus         = employee.StatusActive
)

// Encode は社員一覧を BOM 付きの CSV 文字列に変換します。
func Encode(employees []*employee.Employee) string {
	lines := make([]string, 0, len(employees)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, e := range employees {
		lines = append(lines, encodeRow(e))
	}

	content := strings.Join(lines, "\n")
	withBOM, err := unicode.UTF8BOM.NewEncoder().String(content)
	if err != nil {
		// 不正な UTF-8 を含む場合はそのまま書き出す
		return bom + content
	}
	return withBOM
}

func encodeRow(e *employee.Employee) string {
	return strings.Join([]string{
		e.ID,
		quote(e.Name),
		quote(string(e.Department)),
		quote(string(e.Position)),
		e.Email,
		e.Phone,
		string(e.EmploymentType),
		e.HireDate,
		string(e.Status),
	}, ",")
}

func quote(v string) string {
	return `"` + v + `"`
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Decoder は CSV 文字列を社員一覧に変換します。
type Decoder struct {
	clock Clock
}

// NewDecoder は Decoder を生成します。clock が nil の場合は現在時刻を使います。
func NewDecoder(clock Clock) *Decoder {
	if clock == nil {
		clock = realClock{}
	}
	return &Decoder{clock: clock}
}

// Decode は CSV 文字列を解析します。列数が足りない行は読み飛ばし、エラーにはしません。
// ヘッダー行の内容は検証しません。
func (d *Decoder) Decode(content string) []*employee.Employee {
	lines := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return []*employee.Employee{}
	}

	now := d.clock.Now()
	employees := make([]*employee.Employee, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		values := splitRow(lines[i])
		if len(values) < Columns {
			continue
		}
		employees = append(employees, &employee.Employee{
			ID:             valueOr(values[0], fmt.Sprintf("emp_%d_%d", now.UnixMilli(), i)),
			Name:           values[1],
			Department:     employee.Department(values[2]),
			Position:       employee.Position(values[3]),
			Email:          values[4],
			Phone:          values[5],
			EmploymentType: employee.EmploymentType(valueOr(values[6], string(defaultEmploymentType))),
			HireDate:       values[7],
			Status:         employee.Status(valueOr(values[8], string(defaultStatus))),
		})
	}
	return employees
}

func splitRow(line string) []string {
	values := strings.Split(line, ",")
	for i, v := range values {
		v = strings.TrimPrefix(v, `"`)
		v = strings.TrimSuffix(v, `"`)
		values[i] = strings.TrimSpace(v)
	}
	return values
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
