package main

import (
	"github.com/teamselevated/backend/cmd/service"
)

// @title          Teamselevated Scheduling API
// @version        1.0.0
// @description    Recurring schedule generation, conflict detection and calendar aggregation for the Teamselevated club admin backend.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @BasePath       /api
func main() {
	service.Bootstrap()
}
