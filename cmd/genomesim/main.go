// cmd/genomesim/main.go
package main

import (
	"genomesim/internal/app"
	"genomesim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
