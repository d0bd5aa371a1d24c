package employee

// Department は所属部署を表します。
type Department string

const (
	DepartmentSales            Department = "Sales"
	DepartmentEngineering      Department = "Engineering"
	DepartmentGeneralAffairs   Department = "General Affairs"
	DepartmentMarketing        Department = "Marketing"
	DepartmentHumanResources   Department = "Human Resources"
	DepartmentAccounting       Department = "Accounting"
	DepartmentPlanning         Department = "Planning"
	DepartmentQualityAssurance Department = "Quality Assurance"
)

// Departments は選択可能な部署の一覧です。
var Departments = []Department{
	DepartmentSales,
	DepartmentEngineering,
	DepartmentGeneralAffairs,
	DepartmentMarketing,
	DepartmentHumanResources,
	DepartmentAccounting,
	DepartmentPlanning,
	DepartmentQualityAssurance,
}

// Position は役職を表します。
type Position string

const (
	PositionDirector       Position = "Director"
	PositionSectionManager Position = "Section Manager"
	PositionChief          Position = "Chief"
	PositionSupervisor     Position = "Supervisor"
	PositionTeamLeader     Position = "Team Leader"
	PositionManager        Position = "Manager"
	PositionEngineer       Position = "Engineer"
	PositionSpecialist     Position = "Specialist"
	PositionAssistant      Position = "Assistant"
	PositionStaff          Position = "Staff"
)

// Positions は選択可能な役職の一覧です。
var Positions = []Position{
	PositionDirector,
	PositionSectionManager,
	PositionChief,
	PositionSupervisor,
	PositionTeamLeader,
	PositionManager,
	PositionEngineer,
	PositionSpecialist,
	PositionAssistant,
	PositionStaff,
}

// EmploymentType は雇用形態を表します。
type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "full-time"
	EmploymentContract  EmploymentType = "contract"
	EmploymentPartTime  EmploymentType = "part-time"
	EmploymentTemporary EmploymentType = "temporary"
)

// EmploymentTypes は選択可能な雇用形態の一覧です。
var EmploymentTypes = []EmploymentType{
	EmploymentFullTime,
	EmploymentContract,
	EmploymentPartTime,
	EmploymentTemporary,
}

// Status は在籍状態を表します。
type Status string

const (
	StatusActive  Status = "active"
	StatusRetired Status = "retired"
)

// Statuses は選択可能な在籍状態の一覧です。
var Statuses = []Status{StatusActive, StatusRetired}

// Employee は社員レコードです。
type Employee struct {
	ID             string
	Name           string
	Department     Department
	Position       Position
	Email          string
	Phone          string
	EmploymentType EmploymentType
	// HireDate は YYYY-MM-DD 形式の文字列で保持します。
	HireDate string
	Status   Status
}

// Fields は ID を除いた社員の属性です。
type Fields struct {
	Name           string
	Department     Department
	Position       Position
	Email          string
	Phone          string
	EmploymentType EmploymentType
	HireDate       string
	Status         Status
}

// Fields は社員から ID を除いた属性を返します。
func (e *Employee) Fields() Fields {
	return Fields{
		Name:           e.Name,
		Department:     e.Department,
		Position:       e.Position,
		Email:          e.Email,
		Phone:          e.Phone,
		EmploymentType: e.EmploymentType,
		HireDate:       e.HireDate,
		Status:         e.Status,
	}
}

// Apply は ID を維持したまま全属性を置き換えます。
func (e *Employee) Apply(f Fields) {
	e.Name = f.Name
	e.Department = f.Department
	e.Position = f.Position
	e.Email = f.Email
	e.Phone = f.Phone
	e.EmploymentType = f.EmploymentType
	e.HireDate = f.HireDate
	e.Status = f.Status
}

// Clone は社員のコピーを返します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func isValidDepartment(d Department) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

func isValidPosition(p Position) bool {
	for _, v := range Positions {
		if v == p {
			return true
		}
	}
	return false
}

func isValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentFullTime, EmploymentContract, EmploymentPartTime, EmploymentTemporary:
		return true
	default:
		return false
	}
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusRetired:
		return true
	default:
		return false
	}
}
