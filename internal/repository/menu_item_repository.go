package repository

import (
	"app/internal/domain/model"
	"context"
)

// メニューの永続化だけを約束。
type MenuItemRepository interface {
	//カテゴリ順の一覧。includeInactive=falseなら公開中のみ。
	List(ctx context.Context, includeInactive bool) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)

	Create(ctx context.Context, m model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, m model.MenuItem) error
	SetActive(ctx context.Context, id int64, active bool) error
	SoftDelete(ctx context.Context, id int64) error
}
