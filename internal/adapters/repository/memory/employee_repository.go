package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

// IDGenerator は新しいレコード ID を生成します。
type IDGenerator func() string

// EmployeeRepository はメモリ上で社員レコードを保持するストアです。
// 挿入順を保持し、返却値は常にコピーです。並行利用には対応していません。
type EmployeeRepository struct {
	employees map[string]*employee.Employee
	order     []string
	newID     IDGenerator
}

// NewEmployeeRepository は EmployeeRepository を生成します。newID が nil の場合は UUID を使います。
func NewEmployeeRepository(newID IDGenerator) *EmployeeRepository {
	if newID == nil {
		newID = uuid.NewString
	}
	return &EmployeeRepository{
		employees: make(map[string]*employee.Employee),
		newID:     newID,
	}
}

// Create は新しい ID を採番して末尾に追加します。呼び出し側の ID は無視します。
func (r *EmployeeRepository) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	stored := e.Clone()
	stored.ID = r.uniqueID()
	r.append(stored)
	return stored.Clone(), nil
}

// Update は ID 以外の全属性を置き換えます。
func (r *EmployeeRepository) Update(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	existing, ok := r.employees[e.ID]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	existing.Apply(e.Fields())
	return existing.Clone(), nil
}

// Delete はレコードを削除します。存在しない ID は無視します。
func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return nil
	}
	delete(r.employees, id)
	for idx, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

// BulkImport は既存レコードの後ろに入力順で追加します。
// ID が空、または既存・同一バッチ内で重複する場合は新しい ID を採番します。
func (r *EmployeeRepository) BulkImport(_ context.Context, employees []*employee.Employee) ([]*employee.Employee, error) {
	imported := make([]*employee.Employee, 0, len(employees))
	for _, e := range employees {
		if e == nil {
			continue
		}
		stored := e.Clone()
		if _, exists := r.employees[stored.ID]; stored.ID == "" || exists {
			stored.ID = r.uniqueID()
		}
		r.append(stored)
		imported = append(imported, stored.Clone())
	}
	return imported, nil
}

// FindByID は ID でレコードを取得します。
func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*employee.Employee, error) {
	found, ok := r.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return found.Clone(), nil
}

// List は挿入順で全レコードを返します。
func (r *EmployeeRepository) List(_ context.Context) ([]*employee.Employee, error) {
	list := make([]*employee.Employee, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.employees[id].Clone())
	}
	return list, nil
}

// Len は保持しているレコード数を返します。
func (r *EmployeeRepository) Len() int {
	return len(r.order)
}

func (r *EmployeeRepository) append(e *employee.Employee) {
	r.employees[e.ID] = e
	r.order = append(r.order, e.ID)
}

func (r *EmployeeRepository) uniqueID() string {
	for {
		id := r.newID()
		if _, exists := r.employees[id]; id != "" && !exists {
			return id
		}
	}
}
