package usecase

import (
	"context"
	"errors"
	"time"
)

// ErrScanInProgress is returned when a scan is requested while another scan
// is still running. Overlapping scans are skipped rather than queued.
var ErrScanInProgress = errors.New("expiry scan already in progress")

// ScanResult summarizes a single expiry scan pass
type ScanResult struct {
	// Examined is the number of due, unnotified capsules the scan picked up
	Examined int `json:"examined"`
	// Notified is the number of capsules whose expiry event was published
	// and whose notified flag was set during this pass
	Notified int `json:"notified"`
	// Failed is the number of capsules that hit a publish or persistence
	// error; they remain unnotified and will be retried on a later scan
	Failed int `json:"failed"`
}

// ExpiryUsecase defines the interface for the capsule expiry scanner
type ExpiryUsecase interface {
	// RunOnce performs a single scan over due, unnotified physical capsules,
	// publishing an expiry event and marking each capsule notified. The now
	// instant defines "due"; a zero value means the current clock, which is
	// what the scheduler and the manual trigger normally pass. Returns
	// ErrScanInProgress if another scan is still running.
	RunOnce(ctx context.Context, now time.Time) (*ScanResult, error)
}
