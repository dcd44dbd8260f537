// FILE: main_test.go
package daylog

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the run if a sweep or watcher goroutine outlives the tests
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
