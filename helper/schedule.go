package helper

import (
	"context"
	"log"
	"pizzeria_manager/database"
	"pizzeria_manager/model"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var slotSweeper *cron.Cron

// StartSlotSweeper deletes booking counters left over from past dates.
// The counters carry a TTL as well; the sweeper just keeps the keyspace
// tidy between expirations.
func StartSlotSweeper() {
	slotSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := slotSweeper.AddFunc("*/5 * * * *", sweepExpiredSlotCounters)
	if err != nil {
		log.Printf("Errore avvio sweeper slot: %v", err)
		return
	}

	slotSweeper.Start()
	log.Println("Sweeper contatori slot avviato (ogni 5 minuti)")
}

func sweepExpiredSlotCounters() {
	ctx := context.Background()
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var cursor uint64
	pattern := "pizzeria:slot:*:" + yesterday + ":*"
	for {
		keys, next, err := database.RDB.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			log.Printf("Errore scan contatori slot: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := database.RDB.Del(ctx, keys...).Err(); err != nil {
				log.Printf("Errore cancellazione contatori slot: %v", err)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
}

func StopSlotSweeper() {
	if slotSweeper != nil {
		slotSweeper.Stop()
	}
}

var loyaltyScheduler gocron.Scheduler

// StartLoyaltyDigest logs, once a day, how many accrual points expire
// within the next 30 days. The balance itself never needs a sweep:
// expired entries simply stop counting.
func StartLoyaltyDigest() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("CET", 1*3600)),
	)
	if err != nil {
		log.Printf("Errore avvio scheduler fedeltà: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(logExpiringPoints),
	)
	if err != nil {
		log.Printf("Errore registrazione job fedeltà: %v", err)
		return
	}

	loyaltyScheduler = s
	s.Start()
}

func logExpiringPoints() {
	cutoff := time.Now().AddDate(0, 0, 30)

	var count int64
	err := database.DB.Model(&model.LedgerEntry{}).
		Where("delta > 0 AND expiry IS NOT NULL AND expiry BETWEEN ? AND ?", time.Now(), cutoff).
		Count(&count).Error
	if err != nil {
		log.Printf("Errore conteggio punti in scadenza: %v", err)
		return
	}
	log.Printf("Punti fedeltà in scadenza nei prossimi 30 giorni: %d", count)
}

func StopLoyaltyDigest() {
	if loyaltyScheduler != nil {
		_ = loyaltyScheduler.Shutdown()
	}
}
