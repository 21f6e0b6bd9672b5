package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/logger"
	"github.com/tigercart/tigercart/internal/repository"
	"github.com/tigercart/tigercart/internal/repository/postgresql"
	"github.com/tigercart/tigercart/internal/storage"
)

const usage = `tigercart-admin <command>

Commands:
  seed-items     insert the sample catalog (existing items untouched)
  reset-carts    empty every cart
  reset-orders   delete all orders, their snapshots and timelines
  create-user    -username X -password Y [-name "Display Name"]
`

// sampleCatalog mirrors the campus store's starter inventory.
var sampleCatalog = []*repository.Item{
	{ID: "1", Name: "Coke", PriceCents: 109, Category: "drinks"},
	{ID: "2", Name: "Diet Coke", PriceCents: 129, Category: "drinks"},
	{ID: "3", Name: "Tropicana Orange Juice", PriceCents: 89, Category: "drinks"},
	{ID: "4", Name: "Lay's Potato Chips", PriceCents: 159, Category: "food"},
	{ID: "5", Name: "Snickers Bar", PriceCents: 99, Category: "food"},
	{ID: "6", Name: "Notebook", PriceCents: 249, Category: "other"},
}

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer database.GetPool().Close()

	if err := db.InitSchema(ctx, database); err != nil {
		log.Fatal("schema init", zap.Error(err))
	}

	command := os.Args[1]
	if err := run(ctx, database, log, command, os.Args[2:]); err != nil {
		log.Fatal("command failed", zap.String("command", command), zap.Error(err))
	}
}

func run(ctx context.Context, database *db.Database, log *zap.Logger, command string, args []string) error {
	switch command {
	case "seed-items":
		itemRepo := postgresql.NewItemRepo(database)
		if err := itemRepo.Seed(ctx, sampleCatalog); err != nil {
			return err
		}
		log.Info("sample items seeded", zap.Int("count", len(sampleCatalog)))
		return nil

	case "reset-carts":
		stg := newStorage(database, log)
		if err := stg.ResetCarts(ctx); err != nil {
			return err
		}
		log.Info("all carts emptied")
		return nil

	case "reset-orders":
		stg := newStorage(database, log)
		if err := stg.ResetOrders(ctx); err != nil {
			return err
		}
		log.Info("all orders deleted")
		return nil

	case "create-user":
		fs := flag.NewFlagSet("create-user", flag.ExitOnError)
		username := fs.String("username", "", "login name")
		password := fs.String("password", "", "plaintext password, stored hashed")
		displayName := fs.String("name", "", "display name (defaults to username)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *username == "" || *password == "" {
			return fmt.Errorf("create-user requires -username and -password")
		}
		if *displayName == "" {
			*displayName = *username
		}

		userRepo := postgresql.NewUserRepo(database)
		if err := userRepo.CreateUser(ctx, *username, *password, *displayName); err != nil {
			return err
		}
		log.Info("user created", zap.String("username", *username))
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func newStorage(database *db.Database, log *zap.Logger) *storage.PostgresStorage {
	return storage.NewPostgresStorage(
		database,
		postgresql.NewItemRepo(database),
		postgresql.NewUserRepo(database),
		postgresql.NewCartRepo(database),
		postgresql.NewOrderRepo(database),
		postgresql.NewTimelineRepo(database),
		postgresql.NewOutboxTaskRepo(),
		log,
	)
}
