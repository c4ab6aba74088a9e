package main

import (
	"github.com/pulseboard/backend/cmd/app"
)

// @title          Pulseboard API
// @version        1.0.0
// @description    The Pulseboard activity dashboard API. Records user activities and serves per-user aggregate statistics.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @host           localhost:8000
// @BasePath       /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Prefix the token with "Bearer ", e.g. "Bearer eyJhbGci..."
func main() {
	app.Run()
}
