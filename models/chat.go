package models

import (
    "context"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/skyallone/project07/config"
)

const chatHistoryLimit = 50

// ChatRecord is one chatbot exchange, append-only, keyed by
// (user_id, timestamp) in the chat_history collection.
type ChatRecord struct {
    UserID    string `bson:"user_id" json:"user_id"`
    Message   string `bson:"message" json:"message"`
    Response  string `bson:"response" json:"response"`
    Timestamp int64  `bson:"timestamp" json:"-"`
}

// ChatHistoryEntry is the display shape returned to the frontend.
type ChatHistoryEntry struct {
    Message   string `json:"message"`
    Response  string `json:"response"`
    Timestamp string `json:"timestamp"`
}

// SaveChatRecord appends one exchange to the user's chat history.
func SaveChatRecord(ctx context.Context, rec ChatRecord) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()

    _, err := config.MongoDB.Collection("chat_history").InsertOne(ctx, rec)
    return err
}

// ListChatHistory returns the user's most recent exchanges, newest first.
func ListChatHistory(ctx context.Context, userID string) ([]ChatHistoryEntry, error) {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()

    opts := options.Find().
        SetSort(bson.D{{Key: "timestamp", Value: -1}}).
        SetLimit(chatHistoryLimit)

    cursor, err := config.MongoDB.Collection("chat_history").Find(ctx, bson.M{"user_id": userID}, opts)
    if err != nil {
        return nil, err
    }
    defer cursor.Close(ctx)

    var records []ChatRecord
    if err := cursor.All(ctx, &records); err != nil {
        return nil, err
    }

    entries := make([]ChatHistoryEntry, 0, len(records))
    for _, rec := range records {
        entries = append(entries, ChatHistoryEntry{
            Message:   rec.Message,
            Response:  rec.Response,
            Timestamp: time.Unix(rec.Timestamp, 0).Format("2006-01-02 15:04"),
        })
    }
    return entries, nil
}
