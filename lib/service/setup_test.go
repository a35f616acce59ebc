package service_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/lichub/lichub.go/db"
	"github.com/lichub/lichub.go/db/migrations"
	"github.com/lichub/lichub.go/lib/logging"
	"github.com/lichub/lichub.go/lib/service"
	"github.com/uptrace/bun/migrate"
)

// each suite gets its own named in-memory database so suites cannot see
// each other's tables
func lichubTestServiceInit(t *testing.T) *service.LichubService {
	t.Helper()

	c := &service.Config{
		DatabaseUri: fmt.Sprintf("sqlite://file:test%d?mode=memory&cache=shared", rand.Int63()),
	}

	dbConn, err := db.Open(c)
	if err != nil {
		t.Fatalf("Error initializing db connection: %v", err)
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Error initializing db migrator: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Error migrating database: %v", err)
	}

	return &service.LichubService{
		Config:      c,
		DB:          dbConn,
		Logger:      logging.Logger(""),
		EventPubSub: service.NewPubsub(),
	}
}

func clearTable(svc *service.LichubService, tableName string) error {
	_, err := svc.DB.NewTruncateTable().Table(tableName).Exec(context.Background())
	return err
}
