package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/skyallone/project07/models"
)

// ChatbotAPI handles POST /api/chatbot (JSON: {"message": ...}).
func ChatbotAPI(w http.ResponseWriter, r *http.Request) {
    var req struct {
        Message string `json:"message"`
    }
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendErrorResponse(w, "잘못된 요청 형식입니다.", http.StatusBadRequest)
        return
    }

    message := strings.TrimSpace(req.Message)
    log.Printf("[chatbot] User message: %s", message)
    if message == "" {
        sendJSONResponse(w, map[string]interface{}{"success": false, "response": "메시지를 입력해주세요."})
        return
    }

    answer, delegated := Chat.Respond(r.Context(), message)

    // Exchanges answered by the completion backend are kept in the
    // logged-in user's history.
    if delegated {
        if userID, ok := currentUserID(r); ok {
            rec := models.ChatRecord{
                UserID:    strconv.Itoa(userID),
                Message:   message,
                Response:  answer,
                Timestamp: time.Now().Unix(),
            }
            if err := models.SaveChatRecord(r.Context(), rec); err != nil {
                log.Printf("[chatbot] Failed to save chat record: %v", err)
            }
        }
    }

    sendJSONResponse(w, map[string]interface{}{"success": true, "response": answer})
}

// GetChatHistory handles GET /api/chat_history for the logged-in user.
func GetChatHistory(w http.ResponseWriter, r *http.Request) {
    userID, ok := currentUserID(r)
    if !ok {
        sendErrorResponse(w, "로그인이 필요합니다.", http.StatusUnauthorized)
        return
    }

    history, err := models.ListChatHistory(r.Context(), strconv.Itoa(userID))
    if err != nil {
        log.Printf("[chatbot] Failed to load chat history: %v", err)
        sendJSONResponse(w, map[string]interface{}{"success": false, "history": []models.ChatHistoryEntry{}})
        return
    }
    sendJSONResponse(w, map[string]interface{}{"success": true, "history": history})
}
