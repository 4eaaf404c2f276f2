package transit_test

import (
    "context"
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/skyallone/project07/config"
    "github.com/skyallone/project07/transit"
)

// mockQuerier is a test double for transit.Querier. Set only the method
// fields your test needs.
type mockQuerier struct {
    queryRail     func(ctx context.Context, depCode, arrCode, date string) ([]transit.RawItem, error)
    queryBus      func(ctx context.Context, depID, arrID, date string) ([]transit.RawItem, error)
    queryStations func(ctx context.Context, cityCode int) ([]transit.RawItem, error)
}

func (m *mockQuerier) QueryRail(ctx context.Context, depCode, arrCode, date string) ([]transit.RawItem, error) {
    return m.queryRail(ctx, depCode, arrCode, date)
}
func (m *mockQuerier) QueryBus(ctx context.Context, depID, arrID, date string) ([]transit.RawItem, error) {
    return m.queryBus(ctx, depID, arrID, date)
}
func (m *mockQuerier) QueryStations(ctx context.Context, cityCode int) ([]transit.RawItem, error) {
    return m.queryStations(ctx, cityCode)
}

var _ transit.Querier = (*mockQuerier)(nil)

func loadTestTerminals(t *testing.T) {
    t.Helper()
    path := filepath.Join(t.TempDir(), "terminals.json")
    data := `[{"터미널명":"서울경부","터미널ID":"NAEK010"},{"터미널명":"부산","터미널ID":"NAEK700"}]`
    require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
    require.NoError(t, transit.LoadTerminals(path))
}

func TestSearchRail_EmptyUpstreamFallsBack(t *testing.T) {
    // Scenario: 서울 → 부산, upstream resolves but returns no items.
    svc := transit.NewService(&mockQuerier{
        queryRail: func(ctx context.Context, depCode, arrCode, date string) ([]transit.RawItem, error) {
            assert.Equal(t, "NAT010000", depCode)
            assert.Equal(t, "NAT014445", arrCode)
            return nil, &transit.QueryError{Kind: transit.KindEmpty, Message: "no items"}
        },
    })

    records := svc.SearchRail(context.Background(), "서울", "부산", "20250101")
    require.Len(t, records, 5)
    for i, rec := range records {
        assert.Equal(t, i < 3, rec.SeatAvailable, "entry %d availability", i)
    }
}

func TestSearchRail_UnmappedStationFallsBack(t *testing.T) {
    svc := transit.NewService(&mockQuerier{
        queryRail: func(ctx context.Context, depCode, arrCode, date string) ([]transit.RawItem, error) {
            t.Fatal("query must not run when resolution fails")
            return nil, nil
        },
    })

    records := svc.SearchRail(context.Background(), "Unknown City", "부산", "20250101")
    assert.Equal(t, transit.SampleRail(), records)
}

func TestSearchRail_LiveData(t *testing.T) {
    svc := transit.NewService(&mockQuerier{
        queryRail: func(ctx context.Context, depCode, arrCode, date string) ([]transit.RawItem, error) {
            assert.Equal(t, "20250101", date)
            return []transit.RawItem{{
                "depPlandTime":   "202501010730",
                "arrPlandTime":   "202501011100",
                "trainGradeName": "KTX",
                "trainNo":        "101",
                "adultCharge":    float64(59800),
            }}, nil
        },
    })

    // Dashed dates normalize to the compact upstream form.
    records := svc.SearchRail(context.Background(), "서울", "부산", "2025-01-01")
    require.Len(t, records, 1)
    assert.Equal(t, "07:30", records[0].DepartureTime)
    assert.Equal(t, "59,800원", records[0].PriceLabel)
}

func TestSearchBus_UnmappedTerminalFallsBack(t *testing.T) {
    loadTestTerminals(t)
    svc := transit.NewService(&mockQuerier{
        queryBus: func(ctx context.Context, depID, arrID, date string) ([]transit.RawItem, error) {
            t.Fatal("query must not run when resolution fails")
            return nil, nil
        },
    })

    timetable := svc.SearchBus(context.Background(), "Unknown City", "부산", "")
    require.Len(t, timetable.Records, 3)
    assert.Contains(t, timetable.Header, "출발지")
    assert.Contains(t, timetable.Header, time.Now().Format("2006-01-02"))
}

func TestSearchBus_QueryErrorKeepsLabels(t *testing.T) {
    loadTestTerminals(t)
    svc := transit.NewService(&mockQuerier{
        queryBus: func(ctx context.Context, depID, arrID, date string) ([]transit.RawItem, error) {
            return nil, &transit.QueryError{Kind: transit.KindHTTP, Status: 500, Message: "unexpected status"}
        },
    })

    timetable := svc.SearchBus(context.Background(), "서울경부", "부산", "20250101")
    require.Len(t, timetable.Records, 3)
    assert.Contains(t, timetable.Header, "서울경부 → 부산")
}

func TestSearchBus_LiveData(t *testing.T) {
    loadTestTerminals(t)
    svc := transit.NewService(&mockQuerier{
        queryBus: func(ctx context.Context, depID, arrID, date string) ([]transit.RawItem, error) {
            assert.Equal(t, "NAEK010", depID)
            assert.Equal(t, "NAEK700", arrID)
            return []transit.RawItem{{
                "depPlandTime": "202501010800",
                "arrPlandTime": "202501011230",
                "companyNm":    "동양고속",
                "charge":       float64(28000),
            }}, nil
        },
    })

    timetable := svc.SearchBus(context.Background(), "서울경부", "부산", "20250101")
    require.Len(t, timetable.Records, 1)
    assert.Equal(t, "동양고속", timetable.Records[0].CarrierLabel)
    assert.Contains(t, timetable.Header, "2025-01-01 기준")
}

func TestListStations_FallsBackToStaticMap(t *testing.T) {
    svc := transit.NewService(&mockQuerier{
        queryStations: func(ctx context.Context, cityCode int) ([]transit.RawItem, error) {
            return nil, &transit.QueryError{Kind: transit.KindTimeout, Message: "deadline exceeded"}
        },
    })

    stations := svc.ListStations(context.Background())
    require.NotEmpty(t, stations)

    names := make(map[string]string)
    for _, s := range stations {
        names[s.Name] = s.Code
    }
    assert.Equal(t, "NAT010000", names["서울"])
    assert.Equal(t, "NAT014445", names["부산"])
}

func TestListStations_DeduplicatesByName(t *testing.T) {
    svc := transit.NewService(&mockQuerier{
        queryStations: func(ctx context.Context, cityCode int) ([]transit.RawItem, error) {
            if cityCode != 11 {
                return nil, &transit.QueryError{Kind: transit.KindEmpty}
            }
            return []transit.RawItem{
                {"stationName": "서울", "stationCode": "NAT010000"},
                {"nodename": "서울", "nodeid": "NAT010000"},
                {"nodename": "용산", "nodeid": "NAT010032"},
            }, nil
        },
    })

    stations := svc.ListStations(context.Background())
    assert.Len(t, stations, 2)
}

func TestListStations_StaticFallbackNotCached(t *testing.T) {
    config.InitCache()
    t.Cleanup(func() {
        config.ScheduleCache = nil
        config.StationCache = nil
    })

    failing := true
    svc := transit.NewService(&mockQuerier{
        queryStations: func(ctx context.Context, cityCode int) ([]transit.RawItem, error) {
            if failing {
                return nil, &transit.QueryError{Kind: transit.KindTimeout, Message: "deadline exceeded"}
            }
            return []transit.RawItem{{"stationName": "서울", "stationCode": "NAT010000"}}, nil
        },
    })

    // Outage on the first call serves the static map without pinning it.
    stations := svc.ListStations(context.Background())
    require.NotEmpty(t, stations)
    assert.Greater(t, len(stations), 1)

    // The upstream recovered, so the next call must fetch live data.
    failing = false
    stations = svc.ListStations(context.Background())
    require.Len(t, stations, 1)
    assert.Equal(t, "서울", stations[0].Name)

    // Only the fully live list is cached.
    failing = true
    stations = svc.ListStations(context.Background())
    require.Len(t, stations, 1)
    assert.Equal(t, "서울", stations[0].Name)
}

func TestListStations_PartialResultNotCached(t *testing.T) {
    config.InitCache()
    t.Cleanup(func() {
        config.ScheduleCache = nil
        config.StationCache = nil
    })

    failBusan := true
    svc := transit.NewService(&mockQuerier{
        queryStations: func(ctx context.Context, cityCode int) ([]transit.RawItem, error) {
            switch cityCode {
            case 11:
                return []transit.RawItem{{"stationName": "서울", "stationCode": "NAT010000"}}, nil
            case 21:
                if failBusan {
                    return nil, &transit.QueryError{Kind: transit.KindHTTP, Status: 502, Message: "bad gateway"}
                }
                return []transit.RawItem{{"nodename": "부산", "nodeid": "NAT014445"}}, nil
            default:
                return []transit.RawItem{}, nil
            }
        },
    })

    stations := svc.ListStations(context.Background())
    require.Len(t, stations, 1, "partial list while one city is down")

    failBusan = false
    stations = svc.ListStations(context.Background())
    require.Len(t, stations, 2, "partial list must not have been cached")
}
