package helper

import (
	"context"
	"errors"
	"fmt"
	"pizzeria_manager/database"
	"pizzeria_manager/model"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Booked counters live in Redis so the check-and-increment is a single
// atomic step per (pizzeria, date, time) key: two checkouts racing on
// the last seat of a slot can never both win.
const luaReserveSlot = `
local booked = tonumber(redis.call('GET', KEYS[1]) or '0')
local capacity = tonumber(ARGV[1])
if booked < capacity then
  redis.call('INCR', KEYS[1])
  redis.call('EXPIRE', KEYS[1], tonumber(ARGV[2]))
  return booked + 1
end
return -1
`

// Release floors at zero so a double release cannot open phantom
// capacity.
const luaReleaseSlot = `
local booked = tonumber(redis.call('GET', KEYS[1]) or '0')
if booked > 0 then
  redis.call('DECR', KEYS[1])
  return booked - 1
end
return 0
`

var (
	reserveScript = redis.NewScript(luaReserveSlot)
	releaseScript = redis.NewScript(luaReleaseSlot)
)

// Counters are only needed during the operating window; they expire on
// their own two days after creation.
const slotCounterTTL = 48 * time.Hour

func SlotKey(pizzeriaId uint, date, timeLabel string) string {
	return fmt.Sprintf("pizzeria:slot:%d:%s:%s", pizzeriaId, date, timeLabel)
}

// slotLookupErr maps a missing slot configuration to the domain
// rejection. Storage failures pass through untouched: an outage is not
// a full slot.
func slotLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSlotUnavailable
	}
	return err
}

// ReserveSlot atomically takes one unit of the slot's capacity.
// Returns ErrSlotUnavailable when the slot is full or not configured.
func ReserveSlot(ctx context.Context, pizzeriaId uint, date, timeLabel string) error {
	var cfg model.SlotConfig
	if err := database.DB.
		Where("pizzeria_id = ? AND time = ?", pizzeriaId, timeLabel).
		First(&cfg).Error; err != nil {
		return slotLookupErr(err)
	}
	if IsPastDate(date, time.Now()) {
		return ErrSlotUnavailable
	}

	key := SlotKey(pizzeriaId, date, timeLabel)
	n, err := reserveScript.Run(ctx, database.RDB, []string{key},
		cfg.Capacity, int64(slotCounterTTL/time.Second)).Int()
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrSlotUnavailable
	}
	return nil
}

// ReleaseSlot gives one unit back, used when an order is cancelled or
// when checkout fails after the reservation succeeded.
func ReleaseSlot(ctx context.Context, pizzeriaId uint, date, timeLabel string) error {
	key := SlotKey(pizzeriaId, date, timeLabel)
	return releaseScript.Run(ctx, database.RDB, []string{key}).Err()
}

// OccupancyPct is booked/capacity as a whole percentage.
func OccupancyPct(booked, capacity int) int {
	if capacity <= 0 {
		return 100
	}
	return booked * 100 / capacity
}

// IsPastDate reports whether date (YYYY-MM-DD) is before today.
// Unparseable dates count as past, so they are never bookable.
func IsPastDate(date string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}

// BuildSlotAvailability merges the configured slots with their live
// booked counts into the per-day view, ordered by time ascending.
// Slots on a past date are never available regardless of capacity.
func BuildSlotAvailability(configs []model.SlotConfig, booked map[string]int, date string, now time.Time) []model.SlotAvailability {
	past := IsPastDate(date, now)

	slots := make([]model.SlotAvailability, 0, len(configs))
	for _, cfg := range configs {
		b := booked[cfg.Time]
		slots = append(slots, model.SlotAvailability{
			Time:         cfg.Time,
			Capacity:     cfg.Capacity,
			Booked:       b,
			OccupancyPct: OccupancyPct(b, cfg.Capacity),
			Available:    !past && b < cfg.Capacity,
		})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	return slots
}

// ListSlots computes the availability view for one pizzeria and day.
func ListSlots(ctx context.Context, pizzeriaId uint, date string) ([]model.SlotAvailability, error) {
	var configs []model.SlotConfig
	if err := database.DB.
		Where("pizzeria_id = ?", pizzeriaId).
		Find(&configs).Error; err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(configs))
	if len(configs) > 0 {
		keys := make([]string, len(configs))
		for i, cfg := range configs {
			keys[i] = SlotKey(pizzeriaId, date, cfg.Time)
		}
		values, err := database.RDB.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			if s, ok := v.(string); ok {
				var n int
				fmt.Sscanf(s, "%d", &n)
				booked[configs[i].Time] = n
			}
		}
	}

	return BuildSlotAvailability(configs, booked, date, time.Now()), nil
}
