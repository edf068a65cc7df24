package main

import "zuccess/go_backend/internal/app"

func main() {
	app.Run()
}
