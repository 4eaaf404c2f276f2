package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "time"

    "github.com/skyallone/project07/models"
    "github.com/skyallone/project07/utils"
)

// SearchTransportation handles POST /search_transportation (form fields:
// departure, destination, departure_date, transport_type).
func SearchTransportation(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        sendErrorResponse(w, "잘못된 요청입니다.", http.StatusBadRequest)
        return
    }

    departure := r.FormValue("departure")
    destination := r.FormValue("destination")
    departureDate := r.FormValue("departure_date")
    transportType := r.FormValue("transport_type")
    if transportType == "" {
        transportType = "srt"
    }

    if departure == "" || destination == "" || departureDate == "" {
        sendErrorResponse(w, "필수 입력이 누락되었습니다.", http.StatusBadRequest)
        return
    }

    result := map[string]interface{}{
        "search_info": models.SearchInfo{
            Departure:     departure,
            Destination:   destination,
            DepartureDate: departureDate,
            TransportType: transportType,
        },
    }

    switch transportType {
    case "ktx", "ktx_srt":
        trains := Transit.SearchRail(r.Context(), departure, destination, departureDate)
        result["ktx"] = trains
        result["ktx_srt"] = trains
        log.Printf("[search] KTX/SRT %s → %s: %d records", departure, destination, len(trains))
    case "bus":
        buses := Transit.SearchBus(r.Context(), departure, destination, departureDate)
        result["bus"] = buses
        log.Printf("[search] Bus %s → %s: %d records", departure, destination, len(buses.Records))
    default:
        sendErrorResponse(w, "지원하지 않는 교통수단입니다.", http.StatusBadRequest)
        return
    }

    sendJSONResponse(w, result)
}

// SearchFromFavorite handles POST /api/search_from_favorite: searches both
// modes for a saved route with today's date.
func SearchFromFavorite(w http.ResponseWriter, r *http.Request) {
    var req struct {
        Departure   string `json:"departure"`
        Destination string `json:"destination"`
    }
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendErrorResponse(w, "잘못된 요청 형식입니다.", http.StatusBadRequest)
        return
    }
    if req.Departure == "" || req.Destination == "" {
        sendErrorResponse(w, "출발지와 도착지가 필요합니다.", http.StatusBadRequest)
        return
    }

    today := time.Now().Format("20060102")
    trains := Transit.SearchRail(r.Context(), req.Departure, req.Destination, today)
    buses := Transit.SearchBus(r.Context(), req.Departure, req.Destination, today)

    sendJSONResponse(w, map[string]interface{}{
        "success": true,
        "ktx_srt": trains,
        "bus":     buses,
        "search_info": models.SearchInfo{
            Departure:     req.Departure,
            Destination:   req.Destination,
            DepartureDate: utils.DisplayDate(today),
        },
    })
}
