package commands

import (
	"context"
	"fmt"

	"hotel-ops/internal/domain/stock"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/config"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrDotationNotFound = errs.New("dotation not found")
	ErrStockConflict    = errs.New("stock movement rejected")
)

const (
	notificationStockOut = "stock_out"
	notificationStockLow = "stock_low"

	actionDotationApplied = "dotation_applied"
)

type RecordMovementInput struct {
	ProductID   uuid.UUID
	Type        stock.MovementType
	Quantity    int
	Reason      string
	PerformedBy *uuid.UUID
}

type RecordMovementResult struct {
	MovementID uuid.UUID
	NewStock   int
	Alert      stock.AlertLevel
}

type StockCommands interface {
	RecordMovement(ctx context.Context, in RecordMovementInput) (*RecordMovementResult, error)
	ApplyDotation(ctx context.Context, dotationID uuid.UUID, roomID uuid.UUID, performedBy *uuid.UUID) (*RecordMovementResult, error)
}

type stockUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   config.StockConfig
	clock clock.Clock
}

func NewStockCommands(uow shared.UnitOfWork, cfg config.StockConfig, clk clock.Clock) StockCommands {
	return &stockUseCaseImpl{uow: uow, cfg: cfg, clock: clk}
}

// RecordMovement writes one ledger entry and the resulting stock level in a
// single transaction. The product row is locked first so concurrent movements
// on the same product serialize and the ledger stays consistent with the level.
func (uc *stockUseCaseImpl) RecordMovement(ctx context.Context, in RecordMovementInput) (*RecordMovementResult, error) {
	var result RecordMovementResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := uc.applyMovement(ctx, tx, in)
		if err != nil {
			return err
		}
		result = *r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyDotation consumes a room type's standard allocation of one product:
// a sortie movement for the standard quantity plus an action log entry tying
// the consumption to the room it equipped.
func (uc *stockUseCaseImpl) ApplyDotation(ctx context.Context, dotationID uuid.UUID, roomID uuid.UUID, performedBy *uuid.UUID) (*RecordMovementResult, error) {
	var result RecordMovementResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dot, err := tx.Reads().DotationByID(ctx, dotationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDotationNotFound
			}
			return err
		}
		roomSnap, err := tx.Reads().RoomByID(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		r, err := uc.applyMovement(ctx, tx, RecordMovementInput{
			ProductID:   dot.ProductID,
			Type:        stock.MovementSortie,
			Quantity:    dot.StandardQuantity,
			Reason:      "dotation room " + roomSnap.Number,
			PerformedBy: performedBy,
		})
		if err != nil {
			return err
		}

		details := fmt.Sprintf("dotation %s applied to room %s (qty %d)", dot.ID, roomSnap.Number, dot.StandardQuantity)
		if err = tx.ActionLogs().Create(ctx, performedBy, actionDotationApplied, details, "room", roomSnap.ID); err != nil {
			return err
		}
		result = *r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *stockUseCaseImpl) applyMovement(ctx context.Context, tx shared.Tx, in RecordMovementInput) (*RecordMovementResult, error) {
	prod, err := tx.Products().FindForUpdate(ctx, in.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	mv, err := stock.NewMovement(in.ProductID, in.Type, in.Quantity, in.Reason, in.PerformedBy, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrStockConflict)
	}

	next, err := stock.ApplyMovement(prod.CurrentStock, in.Type, in.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrStockConflict)
	}

	if err = tx.Movements().Create(ctx, mv); err != nil {
		return nil, err
	}
	if err = tx.Products().UpdateStock(ctx, in.ProductID, next); err != nil {
		return nil, err
	}

	alert := stock.AlertLevelFor(next, prod.MinStock)
	if alert != stock.AlertNone {
		if err = uc.emitAlert(ctx, tx, prod, next, alert); err != nil {
			return nil, err
		}
	}

	return &RecordMovementResult{MovementID: mv.ID(), NewStock: next, Alert: alert}, nil
}

// emitAlert addresses the notification to the configured recipient, falling
// back to the settings table. An unresolvable recipient leaves the alert
// unaddressed rather than failing the movement.
func (uc *stockUseCaseImpl) emitAlert(ctx context.Context, tx shared.Tx, prod *shared.ProductSnapshot, level int, alert stock.AlertLevel) error {
	kind := notificationStockLow
	message := fmt.Sprintf("product %s (%s) at %d units, minimum %d", prod.Name, prod.Code, level, prod.MinStock)
	if alert == stock.AlertOut {
		kind = notificationStockOut
		message = fmt.Sprintf("product %s (%s) is out of stock", prod.Name, prod.Code)
	}

	recipient := uc.resolveRecipient(ctx, tx)
	return tx.Notifications().Create(ctx, recipient, kind, message)
}

func (uc *stockUseCaseImpl) resolveRecipient(ctx context.Context, tx shared.Tx) *uuid.UUID {
	raw := uc.cfg.AlertRecipient
	if raw == "" {
		v, err := tx.Reads().SettingValue(ctx, "stock", "alert_recipient")
		if err != nil {
			return nil
		}
		raw = v
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
