// Headless harness for the app core: restores the session, fetches the
// catalog and logs the resulting state. Useful as a smoke check against the
// dev server or a real backend.
package main

import (
	"context"
	"log"
	"time"

	"store499_app/internal/api"
	"store499_app/internal/config"
	"store499_app/internal/kv"
	"store499_app/internal/state"
)

func main() {
	config.Load()

	var persist kv.Store
	if addr := config.RedisAddr(); addr != "" {
		redisStore, err := kv.NewRedis(addr, config.RedisPassword(), "499store:")
		if err != nil {
			log.Fatal("❌ Cannot initialize Redis persistence:", err)
		}
		defer redisStore.Close()
		persist = redisStore
	} else {
		log.Println("⚠️ REDIS_HOST not set, session will not survive restarts")
		persist = kv.NewMemory()
	}

	client := api.NewClient(config.BaseURL())
	app := state.New(client, persist)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.Init(ctx); err != nil {
		log.Fatal("❌ App init failed:", err)
	}
	log.Println("✅ Session:", app.Session.Status())

	if err := app.Catalog.Fetch(ctx); err != nil {
		log.Fatal("❌ Catalog fetch failed:", err)
	}
	log.Printf("✅ Catalog loaded: %d products", len(app.Catalog.Products()))

	if _, err := app.ProceedToCheckout(); err != nil {
		log.Println("ℹ️ Checkout gate:", err)
	}
}
