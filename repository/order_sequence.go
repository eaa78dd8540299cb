package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/food-ordering/models"
	"gorm.io/gorm"
)

// Sequencer hands out order ordinals. tx is the transaction the order is
// being inserted in; implementations that keep their counter elsewhere may
// ignore it.
type Sequencer interface {
	Next(ctx context.Context, tx *gorm.DB) (int64, error)
}

// SequenceAdvancer is implemented by sequencers whose counter can be moved
// forward past ordinals that are already taken. Advance never lowers the
// counter.
type SequenceAdvancer interface {
	Advance(ctx context.Context, db *gorm.DB, floor int64) error
}

// TableSequencer increments a row in order_sequences inside the caller's
// transaction. The row lock serializes concurrent creators and a rolled back
// insert also rolls back the counter, so ordinals have no gaps.
type TableSequencer struct {
	Name string
}

func NewTableSequencer(name string) *TableSequencer {
	return &TableSequencer{Name: name}
}

func (s *TableSequencer) Next(ctx context.Context, tx *gorm.DB) (int64, error) {
	tx = tx.WithContext(ctx)
	res := tx.Model(&models.OrderSequence{}).
		Where("name = ?", s.Name).
		Update("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return 0, fmt.Errorf("increment sequence %s: %w", s.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		seq := models.OrderSequence{Name: s.Name, Value: 1}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, fmt.Errorf("create sequence %s: %w", s.Name, err)
		}
		return seq.Value, nil
	}

	var seq models.OrderSequence
	if err := tx.Where("name = ?", s.Name).First(&seq).Error; err != nil {
		return 0, fmt.Errorf("read sequence %s: %w", s.Name, err)
	}
	return seq.Value, nil
}

// Advance raises the counter row to floor. db must not be the transaction
// that failed, otherwise the raise is rolled back with it.
func (s *TableSequencer) Advance(ctx context.Context, db *gorm.DB, floor int64) error {
	return RaiseSequence(ctx, db, s.Name, floor)
}

// EnsureSequence creates the counter row if missing, starting at floor.
func EnsureSequence(ctx context.Context, db *gorm.DB, name string, floor int64) error {
	seq := models.OrderSequence{Name: name}
	return db.WithContext(ctx).
		Where(models.OrderSequence{Name: name}).
		Attrs(models.OrderSequence{Value: floor}).
		FirstOrCreate(&seq).Error
}

// RaiseSequence moves an existing counter row up to floor. A counter already
// at or past floor is left alone.
func RaiseSequence(ctx context.Context, db *gorm.DB, name string, floor int64) error {
	err := db.WithContext(ctx).
		Model(&models.OrderSequence{}).
		Where("name = ? AND value < ?", name, floor).
		Update("value", floor).Error
	if err != nil {
		return fmt.Errorf("raise sequence %s: %w", name, err)
	}
	return nil
}

// raiseScript sets KEYS[1] to ARGV[1] when the stored value is lower or the
// key is missing, and returns the resulting value.
var raiseScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if cur < floor then
	redis.call('SET', KEYS[1], ARGV[1])
	return floor
end
return cur
`)

// RedisSequencer uses INCR on a single key. Ordinals consumed by a failed
// insert are not returned, so gaps are possible.
type RedisSequencer struct {
	client redis.Cmdable
	key    string
}

// NewRedisSequencer seeds key with floor unless it already exists, so a fresh
// Redis never hands out ordinals the store has already used.
func NewRedisSequencer(ctx context.Context, client redis.Cmdable, key string, floor int64) (*RedisSequencer, error) {
	if err := client.SetNX(ctx, key, floor, 0).Err(); err != nil {
		return nil, fmt.Errorf("seed redis sequence %s: %w", key, err)
	}
	return &RedisSequencer{client: client, key: key}, nil
}

func (s *RedisSequencer) Next(ctx context.Context, _ *gorm.DB) (int64, error) {
	n, err := s.client.Incr(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", s.key, err)
	}
	return n, nil
}

func (s *RedisSequencer) Advance(ctx context.Context, _ *gorm.DB, floor int64) error {
	if err := raiseScript.Run(ctx, s.client, []string{s.key}, floor).Err(); err != nil {
		return fmt.Errorf("raise %s: %w", s.key, err)
	}
	return nil
}
