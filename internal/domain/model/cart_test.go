package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id int64, name string, price float64) LineItem {
	return LineItem{ID: id, Name: name, UnitPrice: price}
}

func TestCart_Add_NewItem(t *testing.T) {
	c := Cart{}

	c.Add(item(1, "Rib", 10))

	assert.Equal(t, 1, len(c.Items))
	assert.Equal(t, int64(1), c.Items[0].Quantity)
}

func TestCart_Add_SameID_IncrementsQuantityOnly(t *testing.T) {
	c := Cart{}

	c.Add(item(1, "Rib", 10))
	c.Add(item(1, "Rib", 10))

	//同一IDで長さは増えない
	assert.Equal(t, 1, len(c.Items))
	assert.Equal(t, int64(2), c.Items[0].Quantity)
}

func TestCart_Add_MissingQuantityTreatedAsOne(t *testing.T) {
	//保存済みデータ由来で数量0の明細が紛れても、+1で2にはならず 1+1=2 になる
	c := Cart{Items: []LineItem{{ID: 1, Name: "Rib", Quantity: 0}}}

	c.Add(item(1, "Rib", 10))

	assert.Equal(t, 1, len(c.Items))
	assert.Equal(t, int64(2), c.Items[0].Quantity)
}

func TestCart_Add_DistinctIDs_LengthEqualsCount(t *testing.T) {
	c := Cart{}

	c.Add(item(1, "Rib", 10))
	c.Add(item(2, "Jollof", 8))
	c.Add(item(3, "Kelewele", 5))

	assert.Equal(t, 3, len(c.Items))
}

func TestCart_Remove_InBounds(t *testing.T) {
	c := Cart{}
	c.Add(item(1, "Rib", 10))
	c.Add(item(2, "Jollof", 8))

	err := c.Remove(0)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(c.Items))
	assert.Equal(t, int64(2), c.Items[0].ID)
}

func TestCart_Remove_OutOfBounds(t *testing.T) {
	c := Cart{}
	c.Add(item(1, "Rib", 10))

	assert.ErrorIs(t, c.Remove(1), ErrCartIndexOutOfRange)
	assert.ErrorIs(t, c.Remove(-1), ErrCartIndexOutOfRange)
	assert.Equal(t, 1, len(c.Items))
}

func TestCart_UpdateQuantity_SetsValue(t *testing.T) {
	c := Cart{}
	c.Add(item(1, "Rib", 10))

	err := c.UpdateQuantity(0, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), c.Items[0].Quantity)
}

func TestCart_UpdateQuantity_One_NoChange(t *testing.T) {
	c := Cart{}
	c.Add(item(1, "Rib", 10))

	err := c.UpdateQuantity(0, 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(c.Items))
	assert.Equal(t, int64(1), c.Items[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroAndNegative_BehaveAsRemove(t *testing.T) {
	for _, qty := range []int64{0, -1} {
		c := Cart{}
		c.Add(item(1, "Rib", 10))

		err := c.UpdateQuantity(0, qty)

		assert.NoError(t, err)
		assert.Equal(t, 0, len(c.Items))
	}
}

func TestCart_Clear(t *testing.T) {
	c := Cart{}
	c.Add(item(1, "Rib", 10))
	c.Add(item(2, "Jollof", 8))

	c.Clear()

	assert.Equal(t, 0, len(c.Items))
}

func TestCart_Subtotal(t *testing.T) {
	c := Cart{}
	c.Add(item(1, "Rib", 10))
	c.Add(item(1, "Rib", 10)) // qty 2
	c.Add(item(2, "Jollof", 8))

	assert.InDelta(t, 28.0, c.Subtotal(), 0.0001)
}
