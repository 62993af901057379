package main

import "github.com/killallgit/podcast-search/cmd"

// Regenerate docs/swagger after changing handler annotations.
//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init -g main.go -o docs/swagger --outputTypes go --parseInternal

// @title           Podcast Search API
// @version         1.0.0
// @description     Paginated search over a podcast catalog with a local sqlite mirror
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-search
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
