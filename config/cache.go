package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

var (
    // Cache instances for different data types
    ScheduleCache *cache.Cache
    StationCache  *cache.Cache
)

const (
    scheduleCacheDuration = 5 * time.Minute
    stationCacheDuration  = 24 * time.Hour

    scheduleCleanupInterval = 10 * time.Minute
    stationCleanupInterval  = 48 * time.Hour
)

func InitCache() {
    ScheduleCache = cache.New(scheduleCacheDuration, scheduleCleanupInterval)
    StationCache = cache.New(stationCacheDuration, stationCleanupInterval)
}

func ClearAllCaches() {
    ScheduleCache.Flush()
    StationCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
