// cmd/main.go
package main

import (
	"go-beer-cellar-api/app"
	_ "go-beer-cellar-api/docs"
)

// @title           Beer Cellar API
// @version         1.0
// @description     REST API for cataloguing beers, breweries, styles, containers, cellar storage and reviews.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
