package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/rankforge/growth-console/internal/console"
	"github.com/rankforge/growth-console/internal/projection"
	"github.com/rankforge/growth-console/internal/records"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "Console listen address")
		dbPath      = flag.String("db", "./growth-console.db", "Path to the SQLite records database")
		snapshotDir = flag.String("snapshot-dir", "./snapshots", "Directory for legacy per-vertical lead snapshots")
	)
	flag.Parse()

	if env := os.Getenv("CONSOLE_DB"); env != "" && *dbPath == "./growth-console.db" {
		*dbPath = env
	}

	if err := projection.ValidateProfiles(); err != nil {
		log.Fatalf("vertical profile table: %v", err)
	}

	store, err := records.OpenSQLiteStore(*dbPath)
	if err != nil {
		log.Fatalf("open records store: %v", err)
	}
	defer store.Close()

	snapshots := records.NewSnapshotStore(*snapshotDir)
	handler := console.NewServer(store, store, snapshots)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Printf("growth console listening on %s (db=%s)", *addr, *dbPath)
	srv := &http.Server{Addr: *addr, Handler: handler}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
