//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// maxDatabaseName is MongoDB's limit on database name length in bytes.
const maxDatabaseName = 63

var shared struct {
	mu    sync.Mutex
	mongo *MongoDBContainer
}

// SetupTestMainWithMongoDB starts one MongoDB container, runs the package
// tests against it and stops it again. It returns the exit code for os.Exit:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := SetupMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration tests need Docker: %v\n", err)
		return 1
	}

	shared.mu.Lock()
	shared.mongo = container
	shared.mu.Unlock()

	code := m.Run()

	shared.mu.Lock()
	shared.mongo = nil
	shared.mu.Unlock()

	if err := container.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: MongoDB container left running: %v\n", err)
	}
	return code
}

// SharedMongoURI returns the URI of the container started by SetupTestMainWithMongoDB.
func SharedMongoURI(t testing.TB) string {
	t.Helper()

	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.mongo == nil {
		t.Fatal("no shared MongoDB container: call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.mongo.URI
}

var invalidDatabaseChars = strings.NewReplacer(
	"/", "_", `\`, "_", ".", "_", " ", "_", `"`, "_", "$", "_", "*", "_",
	"<", "_", ">", "_", ":", "_", "|", "_", "?", "_",
)

// DatabaseName derives a database name from the test name so tests sharing a
// container never see each other's airlines or audit entries.
func DatabaseName(t testing.TB) string {
	suffix := "_" + uuid.NewString()[:8]
	name := invalidDatabaseChars.Replace(t.Name())
	if limit := maxDatabaseName - len(suffix); len(name) > limit {
		name = name[:limit]
	}
	return name + suffix
}
