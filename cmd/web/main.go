// @title           TConnect API
// @version         1.0
// @description     REST backend for the TConnect talent marketplace.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /

package main

import "tconnect_backend/internal/app"

func main() {
	app.Run()
}
