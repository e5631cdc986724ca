package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Dispatcher は通知送信を注文処理から切り離すためのバックグラウンド実行役。
// Enqueueは結果を返さず、送信の成否は呼び出し元に一切影響しない。
// 失敗はここでログに落とすだけ（再送・タイムアウト後の追跡はしない）。
type Dispatcher struct {
	notifier Notifier
	inbox    chan Payload
	timeout  time.Duration

	// closedはinboxを閉じた後のEnqueueをpanicさせないための見張り。
	mu     sync.RWMutex
	closed bool

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(notifier Notifier, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		notifier: notifier,
		inbox:    make(chan Payload, buffer),
		timeout:  15 * time.Second,
		done:     make(chan struct{}),
	}
	go d.loop()
	return d
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for p := range d.inbox {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.notifier.Send(ctx, p); err != nil {
			log.Printf("notify: send failed for customer=%q: %v", p.CustomerName, err)
		}
		cancel()
	}
}

// Enqueue は通知を積んですぐ戻る。バッファが一杯なら捨ててログに残す
// （通知は注文確定を妨げてはいけない）。
func (d *Dispatcher) Enqueue(p Payload) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		log.Printf("notify: dispatcher closed, dropping notification for customer=%q", p.CustomerName)
		return
	}

	select {
	case d.inbox <- p:
	default:
		log.Printf("notify: queue full, dropping notification for customer=%q", p.CustomerName)
	}
}

// Close は受付を止め、積まれた分を送り終えるまで待つ。
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.inbox)
		d.mu.Unlock()
	})
	<-d.done
}
