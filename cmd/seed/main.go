package main

import (
	"context"
	"log"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

type seedTask struct {
	title       string
	description string
	status      string
}

var seedUsers = []struct{ username, password string }{
	{"alice", "s3cret!"},
	{"bob", "hunter22"},
}

var seedTasks = []seedTask{
	{"buy milk", "2% if they have it", "pending"},
	{"write weekly report", "", "pending"},
	{"renew TLS certificates", "expires end of month", "completed"},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, hasher, jwtService)

	created := 0
	for _, u := range seedUsers {
		if _, err := authService.Register(ctx, u.username, u.password); err != nil {
			log.Printf("Skipping user %q: %v", u.username, err)
			continue
		}
		created++
	}
	log.Printf("Seeded %d users (%d skipped)", created, len(seedUsers)-created)

	taskRepo := repository.NewTaskRepository(gormDB)
	taskService := service.NewTaskService(taskRepo, nil)

	created = 0
	for _, t := range seedTasks {
		if _, err := taskService.CreateTask(ctx, t.title, t.description, t.status); err != nil {
			log.Printf("Skipping task %q: %v", t.title, err)
			continue
		}
		created++
	}
	log.Printf("Seeded %d tasks (%d skipped)", created, len(seedTasks)-created)

	log.Println("Seed script completed")
}
