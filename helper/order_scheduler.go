package helper

import (
	"log"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/model"
	"time"

	"github.com/robfig/cron/v3"
)

var orderScheduler *cron.Cron

func StartOrderScheduler() {
	orderScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := orderScheduler.AddFunc("*/5 * * * *", cancelStaleSaveOrders)
	if err != nil {
		log.Printf("Failed to start order scheduler: %v", err)
		return
	}

	orderScheduler.Start()
	log.Println("Order scheduler started (every 5 minutes)")
}

// Tickets opened but never filled or sent to the kitchen are abandoned
// after a day; sweep them so tables free up.
func cancelStaleSaveOrders() {
	cutoff := time.Now().Add(-24 * time.Hour)
	now := time.Now()

	result := database.DB.Model(&model.Order{}).
		Where("status = ? AND created_at < ? AND (SELECT COUNT(*) FROM order_items WHERE order_items.order_id = orders.id) = 0",
			constants.ORDER_SAVE, cutoff).
		Updates(map[string]interface{}{
			"status":       constants.ORDER_CANCELLED,
			"cancelled_at": now,
		})

	if result.Error != nil {
		log.Printf("Failed to sweep stale orders: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Cancelled %d stale empty orders", result.RowsAffected)
	}
}

func StopOrderScheduler() {
	if orderScheduler != nil {
		orderScheduler.Stop()
		log.Println("Order scheduler stopped")
	}
}
