package transit

import (
    "context"
    "fmt"
    "log"

    "github.com/skyallone/project07/config"
    "github.com/skyallone/project07/models"
    "github.com/skyallone/project07/utils"
)

// Querier is the upstream query surface of the pipeline. *Client implements
// it; tests substitute their own.
type Querier interface {
    QueryRail(ctx context.Context, depCode, arrCode, date string) ([]RawItem, error)
    QueryBus(ctx context.Context, depID, arrID, date string) ([]RawItem, error)
    QueryStations(ctx context.Context, cityCode int) ([]RawItem, error)
}

// Service runs the resolve → query → normalize → fallback pipeline. Every
// failure class degrades to sample data, so a search always yields a
// non-empty result.
type Service struct {
    client Querier
}

func NewService(client Querier) *Service {
    return &Service{client: client}
}

// City codes covered by the station list upstream
// (서울, 부산, 대전, 광주, 대구, 울산).
var stationCityCodes = []int{11, 21, 25, 24, 22, 26}

// SearchRail returns rail departures between two station names on a date
// (YYYY-MM-DD or YYYYMMDD). Unresolvable names and upstream failures yield
// the deterministic rail sample timetable.
func (s *Service) SearchRail(ctx context.Context, dep, arr, date string) []models.ScheduleRecord {
    date = utils.NormalizeDate(date)

    cacheKey := config.GetCacheKey("rail", dep, arr, date)
    if config.ScheduleCache != nil {
        if cached, found := config.ScheduleCache.Get(cacheKey); found {
            return cached.([]models.ScheduleRecord)
        }
    }

    depCode, depOK := ResolveRail(dep)
    arrCode, arrOK := ResolveRail(arr)
    if !depOK || !arrOK {
        log.Printf("[transit] Unmapped rail station (dep=%s, arr=%s), using sample data", dep, arr)
        return SampleRail()
    }

    items, err := s.client.QueryRail(ctx, depCode, arrCode, date)
    if err != nil {
        log.Printf("[transit] Rail query failed: %v, using sample data", err)
        return SampleRail()
    }

    records := NormalizeRail(items)
    if len(records) == 0 {
        log.Printf("[transit] Rail response had no usable records, using sample data")
        return SampleRail()
    }

    if config.ScheduleCache != nil {
        config.ScheduleCache.SetDefault(cacheKey, records)
    }
    return records
}

// SearchBus returns express bus departures between two terminal names on a
// date, with a display header. Failures yield the bus sample timetable; an
// unresolvable name additionally blanks the header labels, since the raw
// input is not a known terminal.
func (s *Service) SearchBus(ctx context.Context, dep, arr, date string) models.BusTimetable {
    date = utils.NormalizeDate(date)

    cacheKey := config.GetCacheKey("bus", dep, arr, date)
    if config.ScheduleCache != nil {
        if cached, found := config.ScheduleCache.Get(cacheKey); found {
            return cached.(models.BusTimetable)
        }
    }

    depTerminal, depOK := ResolveBus(dep)
    arrTerminal, arrOK := ResolveBus(arr)
    if !depOK || !arrOK {
        log.Printf("[transit] Unmapped bus terminal (dep=%s, arr=%s), using sample data", dep, arr)
        return SampleBus(date, "", "")
    }

    items, err := s.client.QueryBus(ctx, depTerminal.ID, arrTerminal.ID, date)
    if err != nil {
        log.Printf("[transit] Bus query failed: %v, using sample data", err)
        return SampleBus(date, dep, arr)
    }

    records := NormalizeBus(items)
    if len(records) == 0 {
        log.Printf("[transit] Bus response had no usable records, using sample data")
        return SampleBus(date, dep, arr)
    }

    timetable := models.BusTimetable{
        Header:  fmt.Sprintf("%s → %s 고속버스 시간표 (%s 기준)", dep, arr, utils.DisplayDate(date)),
        Records: records,
    }
    if config.ScheduleCache != nil {
        config.ScheduleCache.SetDefault(cacheKey, timetable)
    }
    return timetable
}

// ListStations fetches the rail station list per covered city, deduplicated
// by name. On a full upstream failure the static rail map serves as the
// station source.
func (s *Service) ListStations(ctx context.Context) []models.StationSuggestion {
    const cacheKey = "stations:all"
    if config.StationCache != nil {
        if cached, found := config.StationCache.Get(cacheKey); found {
            return cached.([]models.StationSuggestion)
        }
    }

    seen := map[string]bool{}
    stations := []models.StationSuggestion{}
    degraded := false
    for _, cityCode := range stationCityCodes {
        items, err := s.client.QueryStations(ctx, cityCode)
        if err != nil {
            log.Printf("[transit] Station list query failed for city %d: %v", cityCode, err)
            degraded = true
            continue
        }
        for _, item := range items {
            name := stringField(item, "stationName", "nodename")
            code := stringField(item, "stationCode", "nodeid")
            if name == "" || seen[name] {
                continue
            }
            seen[name] = true
            stations = append(stations, models.StationSuggestion{Name: name, Code: code})
        }
    }

    if len(stations) == 0 {
        degraded = true
        for _, name := range RailStations() {
            code, _ := ResolveRail(name)
            stations = append(stations, models.StationSuggestion{Name: name, Code: code})
        }
    }

    // Never pin a degraded list for the full station TTL: the next call
    // should retry the upstream.
    if config.StationCache != nil && !degraded {
        config.StationCache.SetDefault(cacheKey, stations)
    }
    return stations
}
