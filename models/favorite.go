package models

import (
    "database/sql"
    "time"

    "github.com/skyallone/project07/config"
)

// Favorite is a saved route owned by a user, unique per
// (user_id, departure, arrival, transport_type).
type Favorite struct {
    ID            int       `json:"id"`
    UserID        int       `json:"user_id"`
    Departure     string    `json:"departure"`
    Arrival       string    `json:"arrival"`
    TransportType string    `json:"transport_type"`
    CreatedAt     time.Time `json:"created_at"`
}

func CreateFavorite(f *Favorite) error {
    return config.DB.QueryRow(
        `INSERT INTO favorites (user_id, departure, arrival, transport_type)
         VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
        f.UserID, f.Departure, f.Arrival, f.TransportType,
    ).Scan(&f.ID, &f.CreatedAt)
}

// FavoriteExists reports whether the user already saved this route. excludeID
// skips one row, for uniqueness checks during updates (pass 0 on create).
func FavoriteExists(userID int, departure, arrival, transportType string, excludeID int) (bool, error) {
    var exists bool
    err := config.DB.QueryRow(
        `SELECT EXISTS (
            SELECT 1 FROM favorites
            WHERE user_id = $1 AND departure = $2 AND arrival = $3 AND transport_type = $4 AND id != $5
         )`,
        userID, departure, arrival, transportType, excludeID,
    ).Scan(&exists)
    return exists, err
}

func GetFavorite(id, userID int) (*Favorite, error) {
    var f Favorite
    err := config.DB.QueryRow(
        `SELECT id, user_id, departure, arrival, transport_type, created_at
         FROM favorites WHERE id = $1 AND user_id = $2`, id, userID,
    ).Scan(&f.ID, &f.UserID, &f.Departure, &f.Arrival, &f.TransportType, &f.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &f, nil
}

func ListFavorites(userID int) ([]Favorite, error) {
    rows, err := config.DB.Query(
        `SELECT id, user_id, departure, arrival, transport_type, created_at
         FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    favorites := []Favorite{}
    for rows.Next() {
        var f Favorite
        if err := rows.Scan(&f.ID, &f.UserID, &f.Departure, &f.Arrival, &f.TransportType, &f.CreatedAt); err != nil {
            return nil, err
        }
        favorites = append(favorites, f)
    }
    return favorites, rows.Err()
}

func UpdateFavorite(f *Favorite) error {
    _, err := config.DB.Exec(
        `UPDATE favorites SET departure = $1, arrival = $2, transport_type = $3
         WHERE id = $4 AND user_id = $5`,
        f.Departure, f.Arrival, f.TransportType, f.ID, f.UserID)
    return err
}

func DeleteFavorite(id, userID int) (bool, error) {
    res, err := config.DB.Exec(`DELETE FROM favorites WHERE id = $1 AND user_id = $2`, id, userID)
    if err != nil {
        return false, err
    }
    n, err := res.RowsAffected()
    return n > 0, err
}
