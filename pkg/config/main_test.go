package config

import (
	"os"
	"testing"

	"github.com/arthur-debert/lollywiz/pkg/logging"
)

func TestMain(m *testing.M) {
	logging.Silence()
	os.Exit(m.Run())
}
