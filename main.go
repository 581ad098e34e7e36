package main

import (
	"time"

	"github.com/pressline/blogapi/config"
	"github.com/pressline/blogapi/models"
	"github.com/pressline/blogapi/routes"
	"github.com/pressline/blogapi/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(models.All()...)

	if err := config.SeedFixtures(db); err != nil {
		utils.Sugar.Fatalf("fixture loading failed: %v", err)
	}

	r := routes.SetupRouter(db)

	// Best-effort removal of tmp files left behind by failed uploads
	utils.StartTmpCleaner(cfg.MediaDir, 5*time.Minute, time.Hour)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
