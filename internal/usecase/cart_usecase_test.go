package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"app/internal/infra/cartstore"
)

func newCartUsecaseForTest() (*CartUsecase, *cartstore.MemoryCartStore) {
	store := cartstore.NewMemoryCartStore()
	return NewCartUsecase(store), store
}

func addInput(id int64, name string, price float64) AddItemInput {
	return AddItemInput{ID: id, Name: name, UnitPrice: price}
}

// =====================
// GetCart
// =====================

func TestCartUsecase_GetCart_NoSavedCart(t *testing.T) {
	u, _ := newCartUsecaseForTest()

	res, err := u.GetCart(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, len(res.Items))
	assert.Equal(t, 0.0, res.Subtotal)
}

func TestCartUsecase_GetCart_MalformedSlotTreatedAsEmpty(t *testing.T) {
	u, store := newCartUsecaseForTest()
	store.PutRaw("sess-1", []byte("{not json"))

	res, err := u.GetCart(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, len(res.Items))
}

// =====================
// AddItem
// =====================

func TestCartUsecase_AddItem_PersistsAcrossInstances(t *testing.T) {
	u, store := newCartUsecaseForTest()

	_, err := u.AddItem(context.Background(), "sess-1", addInput(1, "Waakye", 12))
	assert.NoError(t, err)

	//別インスタンスでも同じスロットから復元できる
	u2 := NewCartUsecase(store)
	res, err := u2.GetCart(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, len(res.Items))
	assert.Equal(t, "Waakye", res.Items[0].Name)
	assert.Equal(t, int64(1), res.Items[0].Quantity)
}

func TestCartUsecase_AddItem_SameID_IncrementsQuantity(t *testing.T) {
	u, _ := newCartUsecaseForTest()

	_, err := u.AddItem(context.Background(), "sess-1", addInput(1, "Waakye", 12))
	assert.NoError(t, err)
	res, err := u.AddItem(context.Background(), "sess-1", addInput(1, "Waakye", 12))
	assert.NoError(t, err)

	assert.Equal(t, 1, len(res.Items))
	assert.Equal(t, int64(2), res.Items[0].Quantity)
	assert.InDelta(t, 24.0, res.Subtotal, 0.0001)
}

func TestCartUsecase_AddItem_InvalidID(t *testing.T) {
	u, _ := newCartUsecaseForTest()

	_, err := u.AddItem(context.Background(), "sess-1", addInput(0, "Waakye", 12))

	httpErr, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestCartUsecase_AddItem_SessionsAreIsolated(t *testing.T) {
	u, _ := newCartUsecaseForTest()

	_, err := u.AddItem(context.Background(), "sess-1", addInput(1, "Waakye", 12))
	assert.NoError(t, err)

	res, err := u.GetCart(context.Background(), "sess-2")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(res.Items))
}

// =====================
// RemoveItem / UpdateQuantity
// =====================

func TestCartUsecase_RemoveItem(t *testing.T) {
	u, _ := newCartUsecaseForTest()
	ctx := context.Background()
	_, _ = u.AddItem(ctx, "sess-1", addInput(1, "Waakye", 12))
	_, _ = u.AddItem(ctx, "sess-1", addInput(2, "Banku", 15))

	res, err := u.RemoveItem(ctx, "sess-1", 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(res.Items))
	assert.Equal(t, int64(2), res.Items[0].ID)
}

func TestCartUsecase_RemoveItem_OutOfRange(t *testing.T) {
	u, _ := newCartUsecaseForTest()
	ctx := context.Background()
	_, _ = u.AddItem(ctx, "sess-1", addInput(1, "Waakye", 12))

	_, err := u.RemoveItem(ctx, "sess-1", 3)

	httpErr, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	//カートは変更されない
	res, _ := u.GetCart(ctx, "sess-1")
	assert.Equal(t, 1, len(res.Items))
}

func TestCartUsecase_UpdateQuantity(t *testing.T) {
	u, _ := newCartUsecaseForTest()
	ctx := context.Background()
	_, _ = u.AddItem(ctx, "sess-1", addInput(1, "Waakye", 12))

	res, err := u.UpdateQuantity(ctx, "sess-1", 0, 4)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), res.Items[0].Quantity)
	assert.InDelta(t, 48.0, res.Subtotal, 0.0001)
}

func TestCartUsecase_UpdateQuantity_BelowOne_RemovesLine(t *testing.T) {
	u, _ := newCartUsecaseForTest()
	ctx := context.Background()
	_, _ = u.AddItem(ctx, "sess-1", addInput(1, "Waakye", 12))

	res, err := u.UpdateQuantity(ctx, "sess-1", 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 0, len(res.Items))
}

// =====================
// Clear
// =====================

func TestCartUsecase_Clear_DeletesSlot(t *testing.T) {
	u, store := newCartUsecaseForTest()
	ctx := context.Background()
	_, _ = u.AddItem(ctx, "sess-1", addInput(1, "Waakye", 12))
	assert.True(t, store.Has("sess-1"))

	err := u.Clear(ctx, "sess-1")

	assert.NoError(t, err)
	//空配列の保存ではなくキーごと消える
	assert.False(t, store.Has("sess-1"))

	res, err := u.GetCart(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(res.Items))
}
