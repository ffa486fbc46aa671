package main

import (
	"exusiai.dev/statsboard/cmd/app"
)

func main() {
	app.Run()
}
