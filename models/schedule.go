package models

// TransportMode identifies which upstream a schedule record came from.
type TransportMode string

const (
    ModeRail TransportMode = "rail"
    ModeBus  TransportMode = "bus"
)

// ScheduleRecord is the canonical, display-ready representation of one
// departure, produced fresh per request and never persisted.
type ScheduleRecord struct {
    Mode          TransportMode `json:"mode"`
    CarrierLabel  string        `json:"carrier_label"`
    VehicleNo     string        `json:"vehicle_no,omitempty"`
    DepartureTime string        `json:"departure_time"`
    ArrivalTime   string        `json:"arrival_time"`
    PriceLabel    string        `json:"price_label"`
    SeatAvailable bool          `json:"seat_available"`
    SeatInfo      string        `json:"seat_info,omitempty"`
}

// BusTimetable pairs bus schedule records with a display header
// ("출발지 → 도착지 고속버스 시간표 (YYYY-MM-DD 기준)").
type BusTimetable struct {
    Header  string           `json:"header"`
    Records []ScheduleRecord `json:"records"`

    // Fallback marks a synthetic timetable so callers can label it as
    // non-live. Not part of the wire format.
    Fallback bool `json:"-"`
}

// Terminal is one express bus terminal from the reference dataset.
type Terminal struct {
    Name string `json:"터미널명"`
    ID   string `json:"터미널ID"`
}

// StationSuggestion is one rail station offered to the frontend pickers.
type StationSuggestion struct {
    Name string `json:"name"`
    Code string `json:"code"`
}

// SearchInfo echoes the search parameters back in search responses.
type SearchInfo struct {
    Departure     string `json:"departure"`
    Destination   string `json:"destination"`
    DepartureDate string `json:"departure_date"`
    TransportType string `json:"transport_type,omitempty"`
}
