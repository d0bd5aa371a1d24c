package employeecsv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrNoFileSelected はファイルが選択されなかった場合に返却されます。
	ErrNoFileSelected = errors.New("no file selected")
	// ErrReadFailed はファイルの読み込みに失敗した場合に返却されます。
	ErrReadFailed = errors.New("failed to read file")
)

// Extension は取り込み対象のファイル拡張子です。
const Extension = ".csv"

// FileName は出力ファイル名 employees_<YYYY-MM-DD>.csv を返します。
func FileName(now time.Time) string {
	return fmt.Sprintf("employees_%s%s", now.Format("2006-01-02"), Extension)
}

// Export は dir 配下に CSV ファイルを書き出し、そのパスを返します。
func Export(dir string, now time.Time, employees []*employee.Employee) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("employeecsv: create dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, []byte(Encode(employees)), 0o644); err != nil {
		return "", fmt.Errorf("employeecsv: write %s: %w", path, err)
	}
	return path, nil
}

// Importer はファイルを読み込んで社員一覧に変換します。
type Importer struct {
	decoder *Decoder
}

// NewImporter は Importer を生成します。
func NewImporter(decoder *Decoder) *Importer {
	if decoder == nil {
		decoder = NewDecoder(nil)
	}
	return &Importer{decoder: decoder}
}

// ReadFile は path の CSV を読み込みます。path が空の場合は ErrNoFileSelected を返します。
// 失敗するのは読み込み自体の失敗時のみで、不正な行は読み飛ばされます。
func (i *Importer) ReadFile(path string) ([]*employee.Employee, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoFileSelected
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer f.Close()

	content, err := i.read(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return i.decoder.Decode(content), nil
}

// Read は r から CSV を読み込みます。
func (i *Importer) Read(r io.Reader) ([]*employee.Employee, error) {
	content, err := i.read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return i.decoder.Decode(content), nil
}

func (i *Importer) read(r io.Reader) (string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	b, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
