package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ogurasousui/employee-directory/internal/adapters/employeecsv"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listOpts struct {
	file       string
	search     string
	department string
	status     string
	sort       string
	desc       bool
	page       int
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of employees from a CSV file",
	Long: `Reads a CSV file, applies the search, facet and sort options and prints
the requested page.

Example:
  directory list --file employees.csv --department Sales --sort hire_date --desc`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.file, "file", "f", "", "CSV file to read (default: import.seed_file)")
	listCmd.Flags().StringVar(&listOpts.search, "search", "", "Match name or email (case-insensitive) or phone")
	listCmd.Flags().StringVar(&listOpts.department, "department", "", "Only this department")
	listCmd.Flags().StringVar(&listOpts.status, "status", "", "Only this status (active, retired)")
	listCmd.Flags().StringVar(&listOpts.sort, "sort", "", "Sort column (id, name, department, position, email, phone, employment_type, hire_date, status)")
	listCmd.Flags().BoolVar(&listOpts.desc, "desc", false, "Sort descending")
	listCmd.Flags().IntVarP(&listOpts.page, "page", "p", 1, "Page number (1-based)")
}

func runList(cmd *cobra.Command, args []string) error {
	query, err := buildQuery()
	if err != nil {
		return err
	}

	file := listOpts.file
	if file == "" {
		file = cfg.Import.SeedFile
	}
	if file == "" {
		return fmt.Errorf("list: --file is required when import.seed_file is not configured")
	}

	ctx := commandContext(cmd)
	svc, err := newService(ctx, employeecsv.NewImporter(nil), file)
	if err != nil {
		return err
	}

	res, err := svc.ListEmployees(ctx, employee.ListEmployeesInput{Query: query, Page: listOpts.page})
	if err != nil {
		return err
	}
	logger.Debug("list rendered",
		zap.String("file", file),
		zap.Int("page", res.Page),
		zap.Int("matched", res.Total()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(res.Employees))
	fmt.Fprintf(out, "page %d / %d · %d matching records\n", res.Page, res.TotalPages, res.Total())
	return nil
}

func buildQuery() (employee.Query, error) {
	q := employee.Query{
		Search:     listOpts.search,
		Department: employee.Department(strings.TrimSpace(listOpts.department)),
		Status:     employee.Status(strings.TrimSpace(listOpts.status)),
	}

	if q.Department != "" && !slices.Contains(employee.Departments, q.Department) {
		return employee.Query{}, fmt.Errorf("list: unknown department %q", listOpts.department)
	}
	if q.Status != "" && !slices.Contains(employee.Statuses, q.Status) {
		return employee.Query{}, fmt.Errorf("list: unknown status %q", listOpts.status)
	}

	field, ok := employee.ParseSortField(listOpts.sort)
	if !ok {
		return employee.Query{}, fmt.Errorf("list: unknown sort column %q", listOpts.sort)
	}
	q.Sort = field
	if listOpts.desc {
		q.Direction = employee.Descending
	}
	return q, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(employees []*employee.Employee) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(employeecsv.Header...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range employees {
		t.Row(
			e.ID,
			e.Name,
			string(e.Department),
			string(e.Position),
			e.Email,
			e.Phone,
			string(e.EmploymentType),
			e.HireDate,
			string(e.Status),
		)
	}
	return t.String()
}
