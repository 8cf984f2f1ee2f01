package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/roznerx/guater-sub000/config"
	"github.com/roznerx/guater-sub000/routes"
	"github.com/roznerx/guater-sub000/services"
	"github.com/roznerx/guater-sub000/utils"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)
	utils.InitMailer(cfg.AWSRegion, cfg.SESEmail)

	hub := services.NewRealtimeHub()
	reminders := services.NewReminderService(db, hub)
	c := reminders.Start()
	defer c.Stop()

	r := routes.SetupRouter(db, cfg, hub)

	log.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
