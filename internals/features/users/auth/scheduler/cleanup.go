package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"quizku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanup menjadwalkan penghapusan baris token_blacklist yang
// sudah kadaluarsa lebih dari ttlDays. Caller wajib memanggil Stop() saat shutdown.
func StartBlacklistCleanup(store repository.BlacklistStore, schedule string, ttlDays int) (*cron.Cron, error) {
	if ttlDays < 0 {
		ttlDays = 0
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(schedule, func() { RunBlacklistCleanup(store, ttlDays) }); err != nil {
		return nil, err
	}
	log.Printf("[CLEANUP] token_blacklist schedule=%q ttl=%dd", schedule, ttlDays)
	c.Start()
	return c, nil
}

func RunBlacklistCleanup(store repository.BlacklistStore, ttlDays int) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
	n, err := store.PurgeExpired(ctx, deleteBefore)
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	} else {
		log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
	}
}
