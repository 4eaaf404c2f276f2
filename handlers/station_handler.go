package handlers

import (
    "net/http"
    "strings"

    "github.com/skyallone/project07/transit"
)

// GetStations handles GET /api/stations: the rail station picker source.
func GetStations(w http.ResponseWriter, r *http.Request) {
    stations := Transit.ListStations(r.Context())
    sendJSONResponse(w, map[string]interface{}{
        "success":  true,
        "stations": stations,
    })
}

// GetBusTerminals handles GET /api/bus_terminals: the bus terminal picker
// source, sorted by terminal name.
func GetBusTerminals(w http.ResponseWriter, r *http.Request) {
    sendJSONResponse(w, map[string]interface{}{
        "success":   true,
        "terminals": transit.Terminals(),
    })
}

// Booking is completed on the operators' own sites; we only redirect.
var bookingURLs = map[string]string{
    "ktx": "https://www.korail.com/ticket/main",
    "srt": "https://etk.srail.kr/hpg/hra/01/selectScheduleList.do",
    "bus": "https://www.kobus.co.kr/main.do",
}

const defaultBookingURL = "https://www.letskorail.com"

// RedirectBooking handles GET /redirect_booking?type=ktx|srt|bus.
func RedirectBooking(w http.ResponseWriter, r *http.Request) {
    transportType := strings.ToLower(r.URL.Query().Get("type"))
    url, ok := bookingURLs[transportType]
    if !ok {
        url = defaultBookingURL
    }
    http.Redirect(w, r, url, http.StatusFound)
}
