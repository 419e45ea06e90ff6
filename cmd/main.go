package main

import (
	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/routes"
	"github.com/gloverronan/HealthOS/services"
	"github.com/gloverronan/HealthOS/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	rt := services.NewRealtimeHub()
	services.InitSyncDeps(config.DB, rt)

	r := routes.SetupRouter(rt)
	r.Run(":8080")
}
