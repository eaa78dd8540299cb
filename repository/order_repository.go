package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yeremiapane/food-ordering/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// createAttempts bounds the retries when an assigned order id collides with
// an existing one.
const createAttempts = 3

type OrderRepository struct {
	DB  *gorm.DB
	Seq Sequencer
}

func NewOrderRepository(db *gorm.DB, seq Sequencer) *OrderRepository {
	return &OrderRepository{DB: db, Seq: seq}
}

// Create assigns the order id from the sequencer and inserts the order with
// its items in one transaction. When the assigned id is already taken the
// counter is moved past it before the next attempt.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		var n int64
		err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var err error
			n, err = r.Seq.Next(ctx, tx)
			if err != nil {
				return err
			}
			order.ID = 0
			order.OrderID = models.FormatOrderID(n)
			for i := range order.Items {
				order.Items[i].ID = 0
				order.Items[i].OrderRef = 0
				order.Items[i].Position = i
			}
			return tx.Create(order).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		if advErr := r.skipTaken(ctx, n); advErr != nil {
			return fmt.Errorf("create order: %w", advErr)
		}
	}
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// skipTaken raises the sequencer past the ordinal that collided and past the
// newest stored order. It runs outside the failed transaction so the raise
// survives the rollback.
func (r *OrderRepository) skipTaken(ctx context.Context, taken int64) error {
	adv, ok := r.Seq.(SequenceAdvancer)
	if !ok {
		return nil
	}
	last, err := r.LastOrdinal(ctx)
	if err != nil {
		return err
	}
	if last < taken {
		last = taken
	}
	return adv.Advance(ctx, r.DB, last)
}

func (r *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus loads the order, lets apply mutate it, and writes back status
// and updated_at in the same transaction. An error from apply aborts the
// update and is returned unchanged.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, apply func(order *models.Order) error) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("order_id = ?", orderID)
		if tx.Dialector.Name() != "sqlite" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&order).Error; err != nil {
			return err
		}
		if err := apply(&order); err != nil {
			return err
		}
		err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"status":     order.Status,
				"updated_at": order.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}
		return orderedItems(tx.Where("order_ref = ?", order.ID)).Find(&order.Items).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// LastOrdinal returns the numeric part of the most recently created order id,
// or 0 when there are no orders.
func (r *OrderRepository) LastOrdinal(ctx context.Context) (int64, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Select("order_id").Order("id DESC").Limit(1).Find(&order).Error
	if err != nil {
		return 0, err
	}
	if order.OrderID == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(order.OrderID, models.OrderIDPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse order id %q: %w", order.OrderID, err)
	}
	return n, nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
