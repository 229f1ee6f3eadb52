package service

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
)

// Status is the body of the status endpoint.
type Status struct {
	Version             string `json:"version"`
	UpTime              string `json:"upTime"`
	ServiceState        string `json:"serviceState"`
	HostName            string `json:"hostName"`
	RequestCount        int64  `json:"requestCount"`
	MaxMemoryMb         int64  `json:"maxMemoryMb"`
	InUseMemoryMb       int64  `json:"inUseMemoryMb"`
	CommitedMemoryMb    int64  `json:"commitedMemoryMb"`
	AvailableProcessors int    `json:"availableProcessors"`
}

// ServiceInfo tracks what the status endpoint reports. It is safe for
// concurrent use.
type ServiceInfo struct {
	version      string
	hostname     string
	startTime    time.Time
	requestCount atomic.Int64
	now          func() time.Time
}

// NewServiceInfo starts tracking a service of the given version.
func NewServiceInfo(version string) *ServiceInfo {
	hostname, err := os.Hostname()
	if err != nil {
		log.Warn().Err(err).Msg("Could not determine hostname")
	}
	return &ServiceInfo{
		version:   version,
		hostname:  hostname,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// IncrementRequestCount records one served request
func (s *ServiceInfo) IncrementRequestCount() {
	s.requestCount.Add(1)
}

// RequestCount returns the number of requests served
func (s *ServiceInfo) RequestCount() int64 {
	return s.requestCount.Load()
}

// Uptime returns the time since start in the form "1d 02:03:04"
func (s *ServiceInfo) Uptime() string {
	return FormatUptime(s.now().Sub(s.startTime))
}

// FormatUptime formats d as days and hh:mm:ss
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, seconds)
}

// Status reports the service state. It returns false when the annotator is
// not healthy.
func (s *ServiceInfo) Status(ctx context.Context, ann annotator.Annotator) (*Status, bool) {
	if !CheckHealth(ctx, ann) {
		return nil, false
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &Status{
		Version:             s.version,
		UpTime:              s.Uptime(),
		ServiceState:        constants.ServiceStateOK,
		HostName:            s.hostname,
		RequestCount:        s.RequestCount(),
		MaxMemoryMb:         megabytes(maxMemory(&mem)),
		InUseMemoryMb:       megabytes(mem.HeapInuse + mem.StackInuse),
		CommitedMemoryMb:    megabytes(mem.Sys - mem.HeapReleased),
		AvailableProcessors: runtime.NumCPU(),
	}, true
}

// maxMemory is the runtime's soft memory limit when one is set, otherwise
// all memory obtained from the OS.
func maxMemory(mem *runtime.MemStats) uint64 {
	if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 {
		return uint64(limit)
	}
	return mem.Sys
}

func megabytes(bytes uint64) int64 {
	return int64((bytes + constants.BytesPerMegabyte - 1) / constants.BytesPerMegabyte)
}

// CheckHealth asks the annotator whether it is healthy. A panicking health
// check counts as unhealthy.
func CheckHealth(ctx context.Context, ann annotator.Annotator) (healthy bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("panic", fmt.Sprintf("%v", rec)).Msg("is_healthy check failed")
			healthy = false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, constants.HealthCheckTimeout)
	defer cancel()
	return ann.IsHealthy(ctx)
}
