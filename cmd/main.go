package main

import (
	"fxconvert/internal/app"

	"github.com/sirupsen/logrus"
)

// @title           fxconvert API
// @version         1.0
// @description     Currency converter backed by live exchange rates.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("fxconvert stopped")
	}
}
