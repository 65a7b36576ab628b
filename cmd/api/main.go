package main

import (
	"context"
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/seacatering/catering-api/internal/config"
	dbpkg "github.com/seacatering/catering-api/internal/db"
	"github.com/seacatering/catering-api/internal/middleware"
	"github.com/seacatering/catering-api/internal/routes"
)

func main() {
	seed := flag.Bool("seed", false, "seed starter data and exit")
	flag.Parse()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if *seed {
		if err := dbpkg.Seed(db); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
		log.Println("seed complete")
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
