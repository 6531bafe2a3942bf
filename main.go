package main

import (
	"github.com/bhortijuddho/admission-svc/config"
	"github.com/bhortijuddho/admission-svc/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
