package hubbub

import (
	"testing"

	"go.uber.org/goleak"
)

// Every notify joins on its callbacks before returning, so no test may leave
// a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
