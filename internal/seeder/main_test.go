//go:build integration
// +build integration

package seeder

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"stone-ledger-backend/internal/testutils"
)

// TestMain runs before all seeder tests and ensures proper Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Seeder tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("Starting seeder integration tests...")
	code := m.Run()

	log.Println("Seeder tests completed, cleaning up Docker containers...")
	testutils.CleanupSharedContainer()

	os.Exit(code)
}
