package model

import "errors"

// indexがカートの範囲外
var ErrCartIndexOutOfRange = errors.New("cart index out of range")

// 1セッション分の注文中カート。
// 並び順は表示用（追加順）で、意味は持たない。
type Cart struct {
	Items []LineItem
}

// 同じIDの明細があれば数量を+1、なければ数量1で末尾に追加する。
// カートの長さは同一IDでは増えない。
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			qty := c.Items[i].Quantity
			if qty < 1 {
				qty = 1
			}
			c.Items[i].Quantity = qty + 1
			return
		}
	}

	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// 指定位置の明細を1行削除する。
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrCartIndexOutOfRange
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// 数量を書き換える。1未満は削除と同じ扱い。上限は設けない。
func (c *Cart) UpdateQuantity(index int, quantity int64) error {
	if quantity < 1 {
		return c.Remove(index)
	}
	if index < 0 || index >= len(c.Items) {
		return ErrCartIndexOutOfRange
	}
	c.Items[index].Quantity = quantity
	return nil
}

// 全明細を空にする。
func (c *Cart) Clear() {
	c.Items = nil
}

// 表示用の小計（単価×数量の合計）。
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
