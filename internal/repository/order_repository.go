package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 注文の永続化（保存・取得）だけを約束。
type OrderRepository interface {
	//1件挿入して、採番済みの行をそのまま返す。
	Create(ctx context.Context, o model.Order) (model.Order, error)

	//全注文を作成日時の新しい順で返す。
	ListAll(ctx context.Context) ([]model.Order, error)

	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
