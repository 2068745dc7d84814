// cmd/pbbarcode/main.go
package main

import (
	"pbbarcode/internal/app"
	"pbbarcode/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
