package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// 保存済みカートが存在しない（空配列とは区別する）。
var ErrNoSavedCart = errors.New("no saved cart")

// セッション単位のカート退避先（1キー＝明細列のJSON）。
// キーが無いことと空のカートが保存されていることは別物として扱う。
type CartStore interface {
	//保存済みの明細列を返す。無ければ ErrNoSavedCart。
	//壊れたデータは「無い」扱いにする（呼び出し側を落とさない）。
	Load(ctx context.Context, sessionID string) ([]model.LineItem, error)

	//全明細のスナップショットを上書き保存する。
	Save(ctx context.Context, sessionID string, items []model.LineItem) error

	//キーごと削除する（空で保存するのではない）。
	Delete(ctx context.Context, sessionID string) error
}
