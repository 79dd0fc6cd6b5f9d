package main

import (
	"log"
	"os"

	"HRKeeper/Config"
	"HRKeeper/CronJobs"
	"HRKeeper/FiberConfig"
	"HRKeeper/Models"
)

func main() {
	cfg, err := Config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogging()

	if cfg.SnapshotSchedule != "" {
		snapshotter := CronJobs.NewSnapshotter(Models.Connect(cfg.DataDir), cfg.SnapshotDir)
		if err := snapshotter.Start(cfg.SnapshotSchedule); err != nil {
			log.Fatalf("Failed to start snapshot scheduler: %v", err)
		}
		defer snapshotter.Stop()
	}

	if err := FiberConfig.FiberConfig(cfg); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

func setupLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime)
}
