package employee

import "context"

// Repository は社員レコードを保持するストアの抽象です。
// ID の採番はストアの責務です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	// Delete は存在しない ID に対しては何もしません。
	Delete(ctx context.Context, id string) error
	// BulkImport は既存レコードの後ろに追加します。ID が空、または重複する場合のみ新しい ID を採番します。
	BulkImport(ctx context.Context, employees []*Employee) ([]*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	// List は挿入順で全レコードを返します。
	List(ctx context.Context) ([]*Employee, error)
}
