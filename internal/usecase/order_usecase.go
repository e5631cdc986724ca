package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"app/internal/domain/model"
	"app/internal/notify"
	repo "app/internal/repository"
)

// 注文の保存/更新/一覧がバックエンドに拒否された。
// 書き込み系では握りつぶさず必ず呼び出し元へ返す。
var ErrPersistenceFailed = errors.New("persistence failed")

// 通知の切り離し実行役。Enqueueは結果を返さない。
type NotificationDispatcher interface {
	Enqueue(p notify.Payload)
}

// OrderUsecase は注文確定（チェックアウト）と注文管理の業務ロジックです。
// 流れ: 保存 → カート破棄 → 通知をバックグラウンドへ → 保存済み注文を返す。
// 通知の成否は注文確定の結果に影響させない。
type OrderUsecase struct {
	orders     repo.OrderRepository
	cart       *CartUsecase
	dispatcher NotificationDispatcher
	audit      repo.AuditLogRepository

	// 送信中フラグ。UIの二度押しを抑えるための助言的なもので、
	// ロックではない（同時Submitを厳密には防がない）。
	// セッション別ではなくプロセス全体で1つ。誰かの送信中は
	// 全セッションのGET /orders/submittingがtrueを返す。
	submitting atomic.Bool
}

func NewOrderUsecase(
	orders repo.OrderRepository,
	cart *CartUsecase,
	dispatcher NotificationDispatcher,
	audit repo.AuditLogRepository,
) *OrderUsecase {
	return &OrderUsecase{
		orders:     orders,
		cart:       cart,
		dispatcher: dispatcher,
		audit:      audit,
	}
}

// 注文確定の入力。itemsは送信時点のカートのスナップショット。
// subtotal/tax/total_amountは送信側の計算値をそのまま信じる。
type SubmitOrderInput struct {
	CustomerName     string
	CustomerContact  string
	CustomerLocation string
	Notes            string
	Items            []model.LineItem
	Subtotal         float64
	Tax              float64
	TotalAmount      float64
}

// UIが送信中表示に使う。
func (u *OrderUsecase) Submitting() bool {
	return u.submitting.Load()
}

// Submit は注文を確定する。
//  1. 注文行を1件挿入し、採番済みの行を受け取る
//  2. 失敗なら ErrPersistenceFailed（カートはそのまま、再送信できる）
//  3. 成功ならカートを破棄してから返す（同じカートの再送信を防ぐ）
//  4. 通知はバックグラウンドに積むだけ。失敗しても結果は変わらない
func (u *OrderUsecase) Submit(ctx context.Context, sessionID string, in SubmitOrderInput) (model.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "customer_name is required")
	}
	if strings.TrimSpace(in.CustomerContact) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "customer_contact is required")
	}
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	u.submitting.Store(true)
	defer u.submitting.Store(false)

	order := model.Order{
		CustomerName:     in.CustomerName,
		CustomerContact:  in.CustomerContact,
		CustomerLocation: in.CustomerLocation,
		Notes:            in.Notes,
		Items:            model.LineItems(in.Items),
		Subtotal:         in.Subtotal,
		Tax:              in.Tax,
		TotalAmount:      in.TotalAmount,
		Status:           model.OrderStatusPending,
		CreatedAt:        time.Now(),
	}

	persisted, err := u.orders.Create(ctx, order)
	if err != nil {
		//カートには触らない。UIは入力し直さずにやり直せる。
		return model.Order{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	//ここから先、注文は確定済み。後段が何に失敗しても取り消さない。
	if err := u.cart.Clear(ctx, sessionID); err != nil {
		log.Printf("order: cart clear failed after submit (order_id=%d): %v", persisted.ID, err)
	}

	u.dispatcher.Enqueue(notify.Payload{
		CustomerName: persisted.CustomerName,
		TotalAmount:  persisted.TotalAmount,
	})

	return persisted, nil
}

// FetchOrders は全注文を新しい順で返す（管理画面用）。
func (u *OrderUsecase) FetchOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return []model.Order{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return orders, nil
}

// UpdateOrderStatus は1件のステータスを更新し、最新の全件一覧を返す。
// 更新に失敗した場合は一覧に手を付けずエラーを返す（手元の一覧をズラさない）。
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, actorUserID int64, orderID int64, status string) ([]model.Order, error) {
	if actorUserID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(status))
	switch newStatus {
	case model.OrderStatusPending, model.OrderStatusPreparing, model.OrderStatusCompleted, model.OrderStatusCancelled:
		// OK
	default:
		return []model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	before, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return []model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return []model.Order{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	if before.Status != newStatus {
		if err := u.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
			if err == repo.ErrNotFound {
				return []model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
			}
			return []model.Order{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}

		u.writeStatusAudit(ctx, actorUserID, orderID, before.Status, newStatus)
	}

	//更新後に全件取り直して返す（UIのキャッシュと実体を揃える）
	return u.FetchOrders(ctx)
}

// 監査ログは注文更新の成否を左右させない。失敗はログだけ残す。
func (u *OrderUsecase) writeStatusAudit(ctx context.Context, actorUserID int64, orderID int64, before model.OrderStatus, after model.OrderStatus) {
	beforeJSON, _ := json.Marshal(map[string]string{"status": string(before)})
	afterJSON, _ := json.Marshal(map[string]string{"status": string(after)})

	err := u.audit.Create(ctx, model.AuditLog{
		ActorUserID:  actorUserID,
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   orderID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		log.Printf("order: audit log write failed (order_id=%d): %v", orderID, err)
	}
}
