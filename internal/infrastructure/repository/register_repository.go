package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	domainRepo "github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type registerRepository struct {
	db *gorm.DB
}

// NewRegisterRepository creates a new cash register repository
func NewRegisterRepository(db *gorm.DB) domainRepo.RegisterRepository {
	return &registerRepository{db: db}
}

func (r *registerRepository) Create(ctx context.Context, register *entity.CashRegister) error {
	return r.db.WithContext(ctx).Create(register).Error
}

func (r *registerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error) {
	var register entity.CashRegister
	err := r.db.WithContext(ctx).First(&register, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &register, nil
}

func (r *registerRepository) GetCurrentOpen(ctx context.Context, tenantID uuid.UUID) (*entity.CashRegister, error) {
	var register entity.CashRegister
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("status = ?", enum.RegisterStatusOpen).
		Order("opened_at DESC").
		First(&register).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &register, nil
}

func (r *registerRepository) Close(ctx context.Context, id uuid.UUID, finalBalance decimal.Decimal, closedAt time.Time, closedBy *uuid.UUID) error {
	return closeRegister(r.db.WithContext(ctx), id, finalBalance, closedAt, closedBy)
}

// closeRegister performs the open→closed transition as a conditional update
// keyed on the expected prior state, so a register that was closed in the
// meantime (manual and automatic paths race) is never closed twice.
func closeRegister(db *gorm.DB, id uuid.UUID, finalBalance decimal.Decimal, closedAt time.Time, closedBy *uuid.UUID) error {
	res := db.Model(&entity.CashRegister{}).
		Where("id = ? AND status = ?", id, enum.RegisterStatusOpen).
		Updates(map[string]interface{}{
			"status":        enum.RegisterStatusClosed,
			"final_balance": finalBalance,
			"closed_at":     closedAt,
			"closed_by":     closedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainRepo.ErrRegisterNotOpen
	}
	return nil
}

type closeoutRepository struct {
	db *gorm.DB
}

// NewCloseoutRepository creates a repository that commits one closing event
// (report insert plus register transition) in a single transaction
func NewCloseoutRepository(db *gorm.DB) domainRepo.CloseoutRepository {
	return &closeoutRepository{db: db}
}

func (r *closeoutRepository) CloseWithReport(ctx context.Context, report *entity.DailyReport, closedAt time.Time, closedBy *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return closeRegister(tx, report.RegisterID, report.ClosingBalance, closedAt, closedBy)
	})
}
