package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AuditLogUsecase は管理者操作ログの閲覧ロジックです。
type AuditLogUsecase struct {
	audit repo.AuditLogRepository
}

func NewAuditLogUsecase(audit repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{audit: audit}
}

// 一覧の絞り込み入力。ゼロ値の項目は条件に含めない。
type AuditLogListInput struct {
	ActorUserID  int64
	Action       string
	ResourceType string
	ResourceID   int64
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Limit        int
	Offset       int
}

// List は監査ログを新しい順で返す。
func (u *AuditLogUsecase) List(ctx context.Context, actorUserID int64, in AuditLogListInput) ([]model.AuditLog, error) {
	if actorUserID <= 0 {
		return []model.AuditLog{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	filter := repo.AuditLogFilter{
		CreatedFrom: in.CreatedFrom,
		CreatedTo:   in.CreatedTo,
		Limit:       in.Limit,
		Offset:      in.Offset,
	}

	if in.ActorUserID > 0 {
		filter.ActorUserID = &in.ActorUserID
	}
	if in.ResourceID > 0 {
		filter.ResourceID = &in.ResourceID
	}

	if in.Action != "" {
		action := model.AuditAction(in.Action)
		switch action {
		case model.AuditActionUpdateOrderStatus,
			model.AuditActionCreateMenuItem,
			model.AuditActionUpdateMenuItem,
			model.AuditActionDeleteMenuItem:
			filter.Action = &action
		default:
			return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid action")
		}
	}

	if in.ResourceType != "" {
		resourceType := model.AuditResourceType(in.ResourceType)
		switch resourceType {
		case model.AuditResourceMenuItem, model.AuditResourceOrder:
			filter.ResourceType = &resourceType
		default:
			return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid resource_type")
		}
	}

	logs, err := u.audit.List(ctx, filter)
	if err != nil {
		return []model.AuditLog{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}
