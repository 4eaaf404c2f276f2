package handlers

import (
    "log"
    "net/http"

    "github.com/skyallone/project07/config"
)

// ResetCaches handles POST /api/admin/clear_cache: flushes the in-memory
// schedule and station caches so the next search refetches upstream data.
func ResetCaches(w http.ResponseWriter, r *http.Request) {
    config.ClearAllCaches()
    log.Printf("[admin] Schedule and station caches flushed")
    sendJSONResponse(w, map[string]interface{}{
        "success": true,
        "message": "캐시가 초기화되었습니다.",
    })
}
