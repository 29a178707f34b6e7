package main

import (
	"github.com/HackVerse/hackathon-service/config"
	"github.com/HackVerse/hackathon-service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
