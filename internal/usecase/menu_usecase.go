package usecase

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// MenuUsecase はメニューの公開一覧と管理者CRUDの業務ロジックです。
type MenuUsecase struct {
	menuRepo repo.MenuItemRepository
	audit    repo.AuditLogRepository
}

func NewMenuUsecase(menuRepo repo.MenuItemRepository, audit repo.AuditLogRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo, audit: audit}
}

type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	IsActive    bool
}

// List はメニュー一覧をカテゴリ順で返す。
// 客側はincludeInactive=false、管理側はtrueで呼ぶ。
func (u *MenuUsecase) List(ctx context.Context, includeInactive bool) ([]model.MenuItem, error) {
	items, err := u.menuRepo.List(ctx, includeInactive)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) Create(ctx context.Context, actorUserID int64, in MenuItemInput) (model.MenuItem, error) {
	if actorUserID <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	created, err := u.menuRepo.Create(ctx, model.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL, //そのまま保存する（加工しない）
		IsActive:    in.IsActive,
	})
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, actorUserID, model.AuditActionCreateMenuItem, created.ID, nil, created)
	return created, nil
}

func (u *MenuUsecase) Update(ctx context.Context, actorUserID int64, id int64, in MenuItemInput) error {
	if actorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	before, err := u.menuRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.Name = in.Name
	after.Description = in.Description
	after.Price = in.Price
	after.Category = in.Category
	after.ImageURL = in.ImageURL
	after.IsActive = in.IsActive

	if err := u.menuRepo.Update(ctx, after); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, actorUserID, model.AuditActionUpdateMenuItem, id, &before, after)
	return nil
}

// ToggleAvailability は公開/非公開を反転し、更新後の行を取り直して返す。
// （更新後の再取得で手元とDBを確実に揃える）
func (u *MenuUsecase) ToggleAvailability(ctx context.Context, actorUserID int64, id int64) (model.MenuItem, error) {
	if actorUserID <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	before, err := u.menuRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.menuRepo.SetActive(ctx, id, !before.IsActive); err != nil {
		if err == repo.ErrNotFound {
			return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.menuRepo.FindByID(ctx, id)
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, actorUserID, model.AuditActionUpdateMenuItem, id, &before, updated)
	return updated, nil
}

func (u *MenuUsecase) Delete(ctx context.Context, actorUserID int64, id int64) error {
	if actorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	before, err := u.menuRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.menuRepo.SoftDelete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, actorUserID, model.AuditActionDeleteMenuItem, id, &before, nil)
	return nil
}

// 監査ログはメニュー操作の成否を左右させない。
func (u *MenuUsecase) writeAudit(ctx context.Context, actorUserID int64, action model.AuditAction, id int64, before interface{}, after interface{}) {
	var beforeJSON, afterJSON []byte
	if before != nil {
		beforeJSON, _ = json.Marshal(before)
	}
	if after != nil {
		afterJSON, _ = json.Marshal(after)
	}

	err := u.audit.Create(ctx, model.AuditLog{
		ActorUserID:  actorUserID,
		Action:       action,
		ResourceType: model.AuditResourceMenuItem,
		ResourceID:   id,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		log.Printf("menu: audit log write failed (menu_item_id=%d): %v", id, err)
	}
}
