package employee

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const hireDateLayout = "2006-01-02"

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
	ImportEmployees(ctx context.Context, in ImportEmployeesInput) (*ImportEmployeesResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	Fields Fields
}

// UpdateEmployeeInput は社員更新時の入力です。ID 以外の全属性を置き換えます。
type UpdateEmployeeInput struct {
	ID     string
	Fields Fields
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	ID string
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// ListEmployeesInput は一覧取得時の入力です。Page が 0 の場合は 1 ページ目を返します。
type ListEmployeesInput struct {
	Query Query
	Page  int
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	// Employees は要求されたページのレコードです。
	Employees []*Employee
	// Matched は絞り込みと並び替えを行った全レコードです。
	Matched    []*Employee
	Page       int
	TotalPages int
}

// Total は条件に一致した件数を返します。
func (r *ListEmployeesResult) Total() int {
	return len(r.Matched)
}

// ImportEmployeesInput は一括取り込み時の入力です。
type ImportEmployeesInput struct {
	Employees []*Employee
}

// ImportEmployeesResult は一括取り込みの結果です。
type ImportEmployeesResult struct {
	Imported []*Employee
}

// CreateEmployee は新しい社員を作成します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	fields, err := normalizeFields(in.Fields)
	if err != nil {
		return nil, err
	}

	emp := &Employee{}
	emp.Apply(fields)

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateEmployee は社員情報を置き換えます。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	fields, err := normalizeFields(in.Fields)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	existing.Apply(fields)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteEmployee は社員を削除します。存在しない ID は無視されます。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Delete(ctx, in.ID)
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListEmployees は絞り込み、並び替え、ページ分割を行った一覧を返します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	page := in.Page
	if page == 0 {
		page = 1
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := Apply(all, in.Query)

	return &ListEmployeesResult{
		Employees:  Paginate(matched, page, PageSize),
		Matched:    matched,
		Page:       page,
		TotalPages: TotalPages(len(matched), PageSize),
	}, nil
}

// ImportEmployees は取り込んだレコードを検証せずに追加します。
func (s *Service) ImportEmployees(ctx context.Context, in ImportEmployeesInput) (*ImportEmployeesResult, error) {
	if len(in.Employees) == 0 {
		return &ImportEmployeesResult{Imported: []*Employee{}}, nil
	}

	imported, err := s.repo.BulkImport(ctx, in.Employees)
	if err != nil {
		return nil, err
	}
	return &ImportEmployeesResult{Imported: imported}, nil
}

func normalizeFields(in Fields) (Fields, error) {
	out := in

	out.Name = strings.TrimSpace(in.Name)
	if out.Name == "" {
		return Fields{}, ErrInvalidName
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Fields{}, err
	}
	out.Email = email

	out.Phone = strings.TrimSpace(in.Phone)

	hireDate, err := normalizeHireDate(in.HireDate)
	if err != nil {
		return Fields{}, err
	}
	out.HireDate = hireDate

	if !isValidDepartment(in.Department) {
		return Fields{}, ErrInvalidDepartment
	}
	if !isValidPosition(in.Position) {
		return Fields{}, ErrInvalidPosition
	}
	if !isValidEmploymentType(in.EmploymentType) {
		return Fields{}, ErrInvalidEmploymentType
	}
	if !isValidStatus(in.Status) {
		return Fields{}, ErrInvalidStatus
	}

	return out, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}
	return addr.Address, nil
}

func normalizeHireDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidHireDate
	}

	t, err := time.ParseInLocation(hireDateLayout, trimmed, time.UTC)
	if err != nil {
		return "", ErrInvalidHireDate
	}
	return t.Format(hireDateLayout), nil
}
