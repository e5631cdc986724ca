package notify

import "context"

// 注文1件ぶんの通知内容。注文全体ではなく名前と合計だけを渡す。
type Payload struct {
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
}

// 1回きりの外向きメッセージ送信の約束。
// 呼び出し側（ディスパッチャ）が失敗をどう扱うかは関知しない。
type Notifier interface {
	Send(ctx context.Context, p Payload) error
}
