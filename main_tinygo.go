//go:build tinygo

package main

import (
	"homestead/app"
	"homestead/hal"
)

func main() {
	app.Run(hal.New())
}
