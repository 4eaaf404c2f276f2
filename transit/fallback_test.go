package transit_test

import (
    "fmt"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/skyallone/project07/transit"
)

func TestSampleRail(t *testing.T) {
    records := transit.SampleRail()
    require.Len(t, records, 5)

    for i, rec := range records {
        assert.Equal(t, "KTX", rec.CarrierLabel)
        assert.Equal(t, fmt.Sprintf("KTX%d", 101+i), rec.VehicleNo)
        if i < 3 {
            assert.True(t, rec.SeatAvailable, "entry %d should be bookable", i)
            assert.Equal(t, "예약가능", rec.SeatInfo)
        } else {
            assert.False(t, rec.SeatAvailable, "entry %d should be sold out", i)
            assert.Equal(t, "매진", rec.SeatInfo)
        }
    }

    // Prices rise by 2,000 per departure from a 55,000 base.
    assert.Equal(t, "55,000원", records[0].PriceLabel)
    assert.Equal(t, "57,000원", records[1].PriceLabel)
    assert.Equal(t, "63,000원", records[4].PriceLabel)

    assert.Equal(t, "07:30", records[0].DepartureTime)
    assert.Equal(t, "19:00", records[4].ArrivalTime)
}

func TestSampleRail_Deterministic(t *testing.T) {
    assert.Equal(t, transit.SampleRail(), transit.SampleRail())
}

func TestSampleBus(t *testing.T) {
    timetable := transit.SampleBus("20250101", "서울경부", "부산")
    require.Len(t, timetable.Records, 3)

    assert.Equal(t, "서울경부 → 부산 고속버스 시간표 (2025-01-01 기준)", timetable.Header)

    companies := []string{"금고고속", "동양고속", "한진고속"}
    for i, rec := range timetable.Records {
        assert.Equal(t, companies[i], rec.CarrierLabel)
        assert.Equal(t, fmt.Sprintf("%02d:00", 8+i*2), rec.DepartureTime)
        assert.Equal(t, fmt.Sprintf("%02d:30", 12+i*2), rec.ArrivalTime)
        assert.True(t, rec.SeatAvailable)
    }
    assert.Equal(t, "25,000원", timetable.Records[0].PriceLabel)
    assert.Equal(t, "28,000원", timetable.Records[1].PriceLabel)
    assert.Equal(t, "31,000원", timetable.Records[2].PriceLabel)
}

func TestSampleBus_PlaceholderLabels(t *testing.T) {
    timetable := transit.SampleBus("", "", "")
    today := time.Now().Format("2006-01-02")
    assert.Equal(t, fmt.Sprintf("출발지 → 도착지 고속버스 시간표 (%s 기준)", today), timetable.Header)
}
