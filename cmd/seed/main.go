package main

import (
	"context"

	"tenthouse/internal/config"
	"tenthouse/internal/db"
	"tenthouse/internal/domain/storage"
	"tenthouse/internal/domain/testimonials"

	"go.uber.org/zap"
)

var samples = []testimonials.Testimonial{
	{
		Name:    "Rajesh Sharma",
		Rating:  5,
		Message: "Excellent service for my daughter's wedding. The tent decoration was beautiful and the staff was very professional.",
	},
	{
		Name:    "Priya Verma",
		Rating:  5,
		Message: "We booked the full setup for our housewarming. Lighting, seating and catering were all arranged on time.",
	},
	{
		Name:    "Amit Gupta",
		Rating:  4,
		Message: "Good quality tents and chairs at a fair price. Setup took a little longer than expected but the result was great.",
	},
	{
		Name:    "Sunita Devi",
		Rating:  5,
		Message: "The mandap and flower decoration made our ceremony special. Highly recommended for any family function.",
	},
	{
		Name:    "Vikram Singh",
		Rating:  4,
		Message: "Reliable team for corporate events. Sound system and stage were exactly what we asked for.",
	},
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, cfg.DB.Addr); err != nil {
		logger.Fatal(err)
	}

	pool, err := db.New(cfg.DB.Addr, cfg.DB.MaxConns, cfg.DB.MaxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	store := storage.NewContainer(pool)

	err = store.WithTx(ctx, func(tx *storage.Tx) error {
		for i := range samples {
			t := samples[i]
			t.Status = testimonials.StatusApproved
			t.IPAddress = "127.0.0.1"
			if err := tx.Testimonials.Create(ctx, &t); err != nil {
				return err
			}
			logger.Infow("seeded testimonial", "id", t.ID, "name", t.Name)
		}
		return nil
	})
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infow("seeding complete", "count", len(samples))
}
