package handlers

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "github.com/skyallone/project07/models"
)

type favoriteRequest struct {
    Departure     string `json:"departure"`
    Arrival       string `json:"arrival"`
    TransportType string `json:"transport_type"`
}

// SaveFavorite handles POST /api/save_favorite.
func SaveFavorite(w http.ResponseWriter, r *http.Request) {
    userID, ok := currentUserID(r)
    if !ok {
        sendErrorResponse(w, "로그인이 필요합니다.", http.StatusUnauthorized)
        return
    }

    var req favoriteRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendErrorResponse(w, "잘못된 요청 형식입니다.", http.StatusBadRequest)
        return
    }
    if req.TransportType == "" {
        req.TransportType = "기본"
    }
    if req.Departure == "" || req.Arrival == "" {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "출발지와 도착지를 입력해주세요."})
        return
    }

    exists, err := models.FavoriteExists(userID, req.Departure, req.Arrival, req.TransportType, 0)
    if err != nil {
        sendErrorResponse(w, "즐겨찾기 저장 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    if exists {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "이미 즐겨찾기에 추가된 경로입니다."})
        return
    }

    favorite := models.Favorite{
        UserID:        userID,
        Departure:     req.Departure,
        Arrival:       req.Arrival,
        TransportType: req.TransportType,
    }
    if err := models.CreateFavorite(&favorite); err != nil {
        sendErrorResponse(w, "즐겨찾기 저장 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "즐겨찾기에 추가되었습니다.", "favorite": favorite})
}

// UpdateFavorite handles PUT /api/favorite/{id}.
func UpdateFavorite(w http.ResponseWriter, r *http.Request) {
    userID, ok := currentUserID(r)
    if !ok {
        sendErrorResponse(w, "로그인이 필요합니다.", http.StatusUnauthorized)
        return
    }
    favoriteID, err := strconv.Atoi(mux.Vars(r)["id"])
    if err != nil {
        sendErrorResponse(w, "잘못된 즐겨찾기 ID입니다.", http.StatusBadRequest)
        return
    }

    var req favoriteRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendErrorResponse(w, "잘못된 요청 형식입니다.", http.StatusBadRequest)
        return
    }

    favorite, err := models.GetFavorite(favoriteID, userID)
    if err != nil {
        sendErrorResponse(w, "즐겨찾기 조회 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    if favorite == nil {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "즐겨찾기를 찾을 수 없습니다."})
        return
    }

    exists, err := models.FavoriteExists(userID, req.Departure, req.Arrival, req.TransportType, favoriteID)
    if err != nil {
        sendErrorResponse(w, "즐겨찾기 수정 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    if exists {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "이미 존재하는 즐겨찾기입니다."})
        return
    }

    favorite.Departure = req.Departure
    favorite.Arrival = req.Arrival
    favorite.TransportType = req.TransportType
    if err := models.UpdateFavorite(favorite); err != nil {
        sendErrorResponse(w, "즐겨찾기 수정 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "즐겨찾기가 수정되었습니다."})
}

// DeleteFavorite handles DELETE /api/favorite/{id}.
func DeleteFavorite(w http.ResponseWriter, r *http.Request) {
    userID, ok := currentUserID(r)
    if !ok {
        sendErrorResponse(w, "로그인이 필요합니다.", http.StatusUnauthorized)
        return
    }
    favoriteID, err := strconv.Atoi(mux.Vars(r)["id"])
    if err != nil {
        sendErrorResponse(w, "잘못된 즐겨찾기 ID입니다.", http.StatusBadRequest)
        return
    }

    deleted, err := models.DeleteFavorite(favoriteID, userID)
    if err != nil {
        sendErrorResponse(w, "즐겨찾기 삭제 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    if !deleted {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "즐겨찾기를 찾을 수 없습니다."})
        return
    }
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "즐겨찾기가 삭제되었습니다."})
}
