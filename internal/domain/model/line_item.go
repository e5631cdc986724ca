package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// 注文明細1行。メニューから追加した時点の情報をスナップショットとして持つ。
type LineItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int64   `json:"quantity"`
}

// ordersテーブルのitems列（JSON）として保存する
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	return json.Marshal(l)
}

func (l *LineItems) Scan(src interface{}) error {
	if src == nil {
		*l = LineItems{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported items column type")
	}

	return json.Unmarshal(data, l)
}
