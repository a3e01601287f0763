// Package models defines request and response types for the ZooAPI REST API
// that are not domain records. Animals and zookeepers are serialized
// directly from internal/zoo.
package models

import "time"

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}

// InvalidAnimalMessage is the plain-text body of a rejected animal create.
const InvalidAnimalMessage = "The animal is not properly formatted."

// ServerStatsResponse contains runtime statistics.
type ServerStatsResponse struct {
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	StartTime     time.Time `json:"start_time"`
	GoRoutines    int       `json:"goroutines"`
	NumCPU        int       `json:"num_cpu"`
	Animals       int       `json:"animals"`

	// Process figures from gopsutil; omitted when the platform cannot report them.
	ProcessRSSMB      *float64 `json:"process_rss_mb,omitempty"`
	ProcessCPUPercent *float64 `json:"process_cpu_percent,omitempty"`
}
