package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は注文前カートの業務ロジックです。
// カート本体はセッション単位の退避スロット（CartStore）に
// JSONスナップショットとして置き、操作ごとに 読む→直す→書き戻す。
type CartUsecase struct {
	store repo.CartStore
}

func NewCartUsecase(store repo.CartStore) *CartUsecase {
	return &CartUsecase{store: store}
}

// CartResponse はUIへ返すカートの形。
type CartResponse struct {
	Items    []model.LineItem `json:"items"`
	Subtotal float64          `json:"subtotal"`
}

// 明細追加の入力。数量は受け取らない（追加は常に+1）。
type AddItemInput struct {
	ID          int64
	Name        string
	Description string
	Category    string
	ImageURL    string
	UnitPrice   float64
}

// スロットからカートを復元する。
// 無い・壊れている場合は空のカートとして扱う（落とさない）。
func (u *CartUsecase) load(ctx context.Context, sessionID string) (model.Cart, error) {
	items, err := u.store.Load(ctx, sessionID)
	if errors.Is(err, repo.ErrNoSavedCart) {
		return model.Cart{}, nil
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return model.Cart{Items: items}, nil
}

// 明細ごと全量をスロットへ書き戻す。
func (u *CartUsecase) save(ctx context.Context, sessionID string, c model.Cart) error {
	if err := u.store.Save(ctx, sessionID, c.Items); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return nil
}

func toCartResponse(c model.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []model.LineItem{}
	}
	return CartResponse{Items: items, Subtotal: c.Subtotal()}
}

// GetCart は現在のカートを返す（無ければ空）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	c, err := u.load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(c), nil
}

// AddItem はカートに追加（同一IDは数量+1）。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, in AddItemInput) (CartResponse, error) {
	if in.ID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	c, err := u.load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	c.Add(model.LineItem{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		UnitPrice:   in.UnitPrice,
	})

	if err := u.save(ctx, sessionID, c); err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(c), nil
}

// RemoveItem は指定位置の明細を1行削除する。範囲外は404。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, index int) (CartResponse, error) {
	c, err := u.load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := c.Remove(index); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.save(ctx, sessionID, c); err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(c), nil
}

// UpdateQuantity は数量変更。1未満は削除と同じ。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, index int, quantity int64) (CartResponse, error) {
	c, err := u.load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := c.UpdateQuantity(index, quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.save(ctx, sessionID, c); err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(c), nil
}

// Clear はカートを空にしてスロットごと削除する。
// 「空配列を保存」ではなくキー削除。保存済みカートの有無チェックを正しく保つため。
func (u *CartUsecase) Clear(ctx context.Context, sessionID string) error {
	if err := u.store.Delete(ctx, sessionID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return nil
}
