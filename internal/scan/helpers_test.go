package scan

import (
	"github.com/sirupsen/logrus"

	"auros/internal/logging"
)

func testLogger() *logrus.Logger {
	return logging.New("error")
}
