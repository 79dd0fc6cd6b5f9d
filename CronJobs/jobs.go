package CronJobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"HRKeeper/Export"
	"HRKeeper/Models"
)

// Snapshotter periodically copies all four tables into one XLSX workbook.
type Snapshotter struct {
	cronScheduler *cron.Cron
	stores        Models.Stores
	outputDir     string
	jobID         cron.EntryID
	now           func() time.Time
}

// NewSnapshotter creates a snapshotter writing workbooks into outputDir.
func NewSnapshotter(stores Models.Stores, outputDir string) *Snapshotter {
	return &Snapshotter{
		cronScheduler: cron.New(cron.WithSeconds()),
		stores:        stores,
		outputDir:     outputDir,
		now:           time.Now,
	}
}

// Start schedules the snapshot. Format: "0 0 1 * * *" = At 01:00:00 AM every day
func (s *Snapshotter) Start(schedule string) error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, s.runSnapshot)
	if err != nil {
		return fmt.Errorf("error scheduling snapshot job: %w", err)
	}

	s.cronScheduler.Start()
	log.Printf("Snapshot scheduler started with schedule %q\n", schedule)
	return nil
}

// Stop terminates the scheduler and waits for a running snapshot to finish.
func (s *Snapshotter) Stop() {
	if s.cronScheduler != nil {
		<-s.cronScheduler.Stop().Done()
		log.Println("Snapshot scheduler stopped")
	}
}

// UpdateSchedule replaces the current schedule.
func (s *Snapshotter) UpdateSchedule(schedule string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, s.runSnapshot)
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Snapshot schedule updated to: %s\n", schedule)
	return nil
}

// RunNow writes a snapshot immediately and returns its path.
func (s *Snapshotter) RunNow() (string, error) {
	sheets := make([]Export.Sheet, 0, 4)
	for _, store := range s.stores.All() {
		table, err := store.Load()
		if err != nil {
			return "", fmt.Errorf("failed to load %s: %w", store.Name, err)
		}
		sheets = append(sheets, Export.Sheet{Name: store.Name, Table: table})
	}

	buf, err := Export.Workbook(sheets...)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	timestamp := s.now().Format("2006-01-02_15-04-05")
	path := filepath.Join(s.outputDir, fmt.Sprintf("hr_snapshot_%s.xlsx", timestamp))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

func (s *Snapshotter) runSnapshot() {
	path, err := s.RunNow()
	if err != nil {
		log.Printf("Error in snapshot: %v\n", err)
		return
	}
	log.Printf("Snapshot written to %s\n", path)
}
