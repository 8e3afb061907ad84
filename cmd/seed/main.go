package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/grocery-list/config"
	groceryapp "github.com/oksasatya/grocery-list/internal/application"
	mongoinfra "github.com/oksasatya/grocery-list/internal/infrastructure/mongodb"
	"github.com/oksasatya/grocery-list/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := mongoinfra.NewClient(ctx, cfg.MongoURI, cfg.AppName+"-seed", cfg.MongoPoolSize(), cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongoinfra.NewGroceryRepository(mongoinfra.DatabaseSource(client.Database(cfg.MongoDatabase)), nil)
	svc := groceryapp.NewService(repo, logger)

	user, err := svc.FindUser(ctx, "demoUser")
	if err != nil {
		log.Fatalf("failed to look up demo user: %v", err)
	}
	if user == nil {
		if user, err = svc.CreateUser(ctx, "demoUser", "demo@example.com"); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
	}
	fmt.Printf("seeded user: id=%s name=%s email=%s\n", user.ID, user.Name, user.Email)

	store, err := svc.CreateStore(ctx, "Corner Market", []string{"Meat", "PRODUCE", "Dairy"})
	if err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}
	fmt.Printf("seeded store: id=%s categories=%v\n", store.ID, store.Categories)

	list, err := svc.CreateList(ctx, "weekly", user.ID, []groceryapp.ItemInput{
		{Name: "salmon", Category: "Meat", Amount: "2lb"},
	})
	if err != nil {
		log.Fatalf("failed to seed list: %v", err)
	}
	if list, err = svc.AddListItem(ctx, list.ID, groceryapp.ItemInput{Name: "brocc", Category: "veg", Amount: "1"}); err != nil {
		log.Fatalf("failed to append list item: %v", err)
	}
	fmt.Printf("seeded list: id=%s items=%d\n", list.ID, len(list.Items))

	lists, err := svc.ListsForUser(ctx, user.ID)
	if err != nil {
		log.Printf("some lists could not be read: %v", err)
	}
	fmt.Printf("user %s now owns %d list(s)\n", user.Name, len(lists))
}
