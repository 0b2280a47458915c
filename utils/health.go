package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the latest probe result for each backing store the booking
// flow depends on. Redis pools are reported by role.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes Mongo and the role-specific Redis pools on a
// fixed interval, starting with an immediate check so /health is meaningful
// right after boot.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		probe(mongoClient)
		for range ticker.C {
			probe(mongoClient)
		}
	}()
}

func probe(mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisHealth := map[string]bool{
		"cache":    GetCacheClient().Ping(ctx).Err() == nil,
		"sessions": GetSessionCacheClient().Ping(ctx).Err() == nil,
		"otp":      GetOTPCacheClient().Ping(ctx).Err() == nil,
	}
	mongoHealthy := mongoClient.Ping(ctx, nil) == nil

	healthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now().UTC(),
	}
	healthMu.Unlock()
}
