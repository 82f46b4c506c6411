package domain

import (
	"math"
	"time"
)

// TimeEntry is one block of tracked time. An entry without an end time is the running timer.
type TimeEntry struct {
	ID             *int64     `json:"id,omitempty"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	ElapsedMinutes *int       `json:"elapsed_minutes,omitempty"`
}

// NewTimeEntry creates a running entry that started at startTime.
func NewTimeEntry(title, category string, startTime time.Time) TimeEntry {
	return TimeEntry{
		Title:     title,
		Category:  category,
		StartTime: startTime,
	}
}

// Identity returns the store-assigned id, if any.
func (te TimeEntry) Identity() (int64, bool) {
	if te.ID == nil {
		return 0, false
	}
	return *te.ID, true
}

// WithIdentity returns a copy of the entry carrying id.
func (te TimeEntry) WithIdentity(id int64) TimeEntry {
	te.ID = &id
	return te
}

// IsRunning returns true if the time entry has no end time.
func (te TimeEntry) IsRunning() bool {
	return te.EndTime == nil
}

// Stop returns a copy of the entry ended at endTime with its elapsed minutes filled in.
// An endTime before the start is clamped to the start.
func (te TimeEntry) Stop(endTime time.Time) TimeEntry {
	if endTime.Before(te.StartTime) {
		endTime = te.StartTime
	}
	minutes := ElapsedMinutes(te.StartTime, endTime)
	te.EndTime = &endTime
	te.ElapsedMinutes = &minutes
	return te
}

// Minutes returns the recorded elapsed minutes, or 0 for a running entry.
func (te TimeEntry) Minutes() int {
	if te.ElapsedMinutes == nil {
		return 0
	}
	return *te.ElapsedMinutes
}

// Duration returns the duration of the entry, measured up to now if it is still running.
func (te TimeEntry) Duration(now time.Time) time.Duration {
	if te.EndTime == nil {
		return now.Sub(te.StartTime)
	}
	return te.EndTime.Sub(te.StartTime)
}

// IsValid checks the structural shape of the entry.
func (te TimeEntry) IsValid() bool {
	if te.StartTime.IsZero() {
		return false
	}
	if te.EndTime != nil && te.EndTime.Before(te.StartTime) {
		return false
	}
	if te.ElapsedMinutes != nil && *te.ElapsedMinutes < 0 {
		return false
	}
	return true
}

// ElapsedMinutes rounds the span between start and end to whole minutes, half away from zero.
func ElapsedMinutes(start, end time.Time) int {
	minutes := math.Round(end.Sub(start).Minutes())
	if minutes < 0 {
		return 0
	}
	return int(minutes)
}
