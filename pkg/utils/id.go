package utils

import (
	"fmt"
	"sync"
	"time"
)

// GenerateID creates prefixed unique IDs for locally created records.
// Format: prefix-timestamp-counter (e.g. "mission-1705612800000-001")
func GenerateID(prefix string) string {
	timestamp := time.Now().UnixMilli()
	counter := atomicCounter()
	return fmt.Sprintf("%s-%d-%03d", prefix, timestamp, counter)
}

// GenerateMissionID creates mission-specific ID
func GenerateMissionID() string {
	return GenerateID("mission")
}

// GenerateRewardID creates reward-specific ID
func GenerateRewardID() string {
	return GenerateID("reward")
}

// atomicCounter provides thread-safe sequential counters
var (
	counter int64
	mu      sync.Mutex
)

func atomicCounter() int {
	mu.Lock()
	defer mu.Unlock()
	counter++
	return int(counter)
}
