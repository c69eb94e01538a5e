package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/repository/firestore"
	"github.com/maham-hq/maham/pkg/repository/memory"
)

func newMemoryRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, os.Getenv("TEST_FIRESTORE_DATABASE_ID"),
		firestore.WithCollectionPrefix(fmt.Sprintf("test_%d", time.Now().UnixNano())))
	gt.NoError(t, err).Required()

	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Logf("failed to close firestore repository: %v", err)
		}
	})

	return repo
}

// runBackends runs the given suite against every available backend
func runBackends(t *testing.T, suite func(t *testing.T, newRepo func(t *testing.T) interfaces.Repository)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		suite(t, newMemoryRepo)
	})

	t.Run("firestore", func(t *testing.T) {
		suite(t, newFirestoreRepo)
	})
}
