package helper

import (
	"log"
	"time"

	"resto_manager/constants"
	"resto_manager/database"

	"github.com/go-co-op/gocron/v2"
)

var clientStatsScheduler gocron.Scheduler

// ReconcileClientCounters recomputes every client's order count and total
// spent from the actual order history. The checkout transaction keeps the
// counters in step, but this heals any drift (crashed checkout, orders
// cancelled after the fact).
func ReconcileClientCounters() {
	result := database.DB.Exec(`
        UPDATE clients c
        SET order_count = agg.cnt,
            total_spent = agg.total
        FROM (
            SELECT client_id,
                   COUNT(*)               AS cnt,
                   COALESCE(SUM(total), 0) AS total
            FROM orders
            WHERE client_id IS NOT NULL AND status != ?
            GROUP BY client_id
        ) agg
        WHERE c.id = agg.client_id
          AND (c.order_count != agg.cnt OR c.total_spent != agg.total)
    `, constants.ORDER_STATUS_CANCELLED)

	if result.Error != nil {
		log.Printf("Client counter reconciliation failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Client counter reconciliation fixed %d rows", result.RowsAffected)
	}
}

func StartClientStatsScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WAT", 1*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	clientStatsScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(ReconcileClientCounters),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Client stats scheduler started (03:00 WAT)")
}

func StopClientStatsScheduler() {
	if clientStatsScheduler != nil {
		clientStatsScheduler.Shutdown()
	}
}
