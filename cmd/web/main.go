package main

import "talentmatch_backend/internal/app"

func main() {
	app.Run()
}
