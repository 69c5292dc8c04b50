package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	"savanna/services/notification"
)

// BookingSweeper marks overdue stays as checked out.
type BookingSweeper interface {
	SweepCheckouts(now time.Time) (int, error)
}

var sweeper BookingSweeper

func SetBookingSweeper(s BookingSweeper) {
	sweeper = s
}

// InitCronJobs schedules the nightly checkout sweep.
func InitCronJobs(c *cron.Cron, m *melody.Melody) {
	notifier := notification.NewMelodyService(m)

	c.AddFunc("0 0 * * *", func() {
		if sweeper == nil {
			return
		}
		count, err := sweeper.SweepCheckouts(time.Now())
		if err != nil {
			log.Printf("checkout sweep failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("checkout sweep: %d bookings checked out", count)
			_ = notifier.SendMessage(notification.NewSweepEvent(count).Build())
		}
	})

	c.Start()
	log.Println("Cron jobs started")
}
