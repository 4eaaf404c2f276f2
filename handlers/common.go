package handlers

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "time"

    "github.com/gorilla/sessions"

    "github.com/skyallone/project07/models"
)

const sessionName = "trip-session"

// TransitSearcher is the search pipeline surface the handlers call.
// *transit.Service implements it.
type TransitSearcher interface {
    SearchRail(ctx context.Context, dep, arr, date string) []models.ScheduleRecord
    SearchBus(ctx context.Context, dep, arr, date string) models.BusTimetable
    ListStations(ctx context.Context) []models.StationSuggestion
}

// ChatResponder answers chatbot messages. *chatbot.Responder implements it.
type ChatResponder interface {
    Respond(ctx context.Context, message string) (string, bool)
}

var (
    Transit TransitSearcher
    Chat    ChatResponder
    Store   *sessions.CookieStore
)

// Init wires the handler package's collaborators. Called once from main.
func Init(transitSvc TransitSearcher, chat ChatResponder, sessionSecret string) {
    Transit = transitSvc
    Chat = chat
    Store = sessions.NewCookieStore([]byte(sessionSecret))
    Store.Options = &sessions.Options{
        Path:     "/",
        MaxAge:   86400 * 7,
        HttpOnly: true,
    }
}

func sendErrorResponse(w http.ResponseWriter, message string, code int) {
    log.Printf("Error: %s (Code: %d)", message, code)

    response := map[string]interface{}{
        "error":     message,
        "code":      code,
        "status":    http.StatusText(code),
        "timestamp": time.Now().Format(time.RFC3339),
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    json.NewEncoder(w).Encode(response)
}

func sendJSONResponse(w http.ResponseWriter, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(payload)
}

// currentUserID returns the logged-in user's ID from the session cookie.
func currentUserID(r *http.Request) (int, bool) {
    session, err := Store.Get(r, sessionName)
    if err != nil {
        return 0, false
    }
    id, ok := session.Values["user_id"].(int)
    return id, ok
}

func setSessionUser(w http.ResponseWriter, r *http.Request, userID int) error {
    session, _ := Store.Get(r, sessionName)
    session.Values["user_id"] = userID
    return session.Save(r, w)
}

func clearSession(w http.ResponseWriter, r *http.Request) {
    session, _ := Store.Get(r, sessionName)
    delete(session.Values, "user_id")
    session.Options.MaxAge = -1
    session.Save(r, w)
}
