package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

const reportsDir = "./public/reports"

// CleanupExpiredFiles removes a file once it is older than the TTL.
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		err := os.Remove(filePath)
		if err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		log.Printf("expired report %s deleted", filePath)
	}
	return nil
}

// CleanupExpiredReports sweeps the generated report directory. Reports are
// throwaway artifacts; anything older than the TTL goes.
func CleanupExpiredReports(ttl time.Duration) error {
	files, err := os.ReadDir(reportsDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading reports directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := CleanupExpiredFiles(filepath.Join(reportsDir, file.Name()), ttl); err != nil {
			log.Println("error cleaning up report:", err)
		}
	}

	return nil
}

// RunScheduledCleanup sweeps generated reports daily at 1 AM, with retries.
func RunScheduledCleanup() {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled report cleanup...")

		for retries := 0; retries < maxRetries; retries++ {
			err := CleanupExpiredReports(24 * time.Hour)
			if err == nil {
				log.Println("report cleanup successful")
				return
			}
			log.Printf("report cleanup failed: %v", err)
			time.Sleep(retryDelay)
		}

		log.Printf("report cleanup failed after %d retries, please check the system", maxRetries)
	})

	c.Start()
}
