package transit

import (
    "fmt"

    "github.com/skyallone/project07/models"
    "github.com/skyallone/project07/utils"
)

// Fallback timetables returned when live lookup is impossible. Deterministic
// and free of I/O: this is the availability floor of the search pipeline.

var sampleRailTimes = [][2]string{
    {"07:30", "11:00"},
    {"09:00", "12:30"},
    {"11:00", "14:30"},
    {"13:00", "16:30"},
    {"15:30", "19:00"},
}

var sampleBusCompanies = []string{"금고고속", "동양고속", "한진고속"}

// SampleRail returns the fixed five-entry rail timetable. The first three
// departures are bookable, the last two sold out.
func SampleRail() []models.ScheduleRecord {
    records := make([]models.ScheduleRecord, 0, len(sampleRailTimes))
    for i, times := range sampleRailTimes {
        available := i < 3
        seatInfo := "예약가능"
        if !available {
            seatInfo = "매진"
        }
        records = append(records, models.ScheduleRecord{
            Mode:          models.ModeRail,
            CarrierLabel:  "KTX",
            VehicleNo:     fmt.Sprintf("KTX%d", 101+i),
            DepartureTime: times[0],
            ArrivalTime:   times[1],
            PriceLabel:    utils.GroupDigits(int64(55000+i*2000)) + "원",
            SeatAvailable: available,
            SeatInfo:      seatInfo,
        })
    }
    return records
}

// SampleBus returns the fixed three-carrier bus timetable with an
// "as of <date>" header. Empty labels render as the generic
// 출발지/도착지 placeholders.
func SampleBus(date, dep, arr string) models.BusTimetable {
    if dep == "" {
        dep = "출발지"
    }
    if arr == "" {
        arr = "도착지"
    }
    displayDate := utils.DisplayDate(utils.NormalizeDate(date))

    records := make([]models.ScheduleRecord, 0, len(sampleBusCompanies))
    for i, company := range sampleBusCompanies {
        records = append(records, models.ScheduleRecord{
            Mode:          models.ModeBus,
            CarrierLabel:  company,
            DepartureTime: fmt.Sprintf("%02d:00", 8+i*2),
            ArrivalTime:   fmt.Sprintf("%02d:30", 12+i*2),
            PriceLabel:    utils.GroupDigits(int64(25000+i*3000)) + "원",
            SeatAvailable: true,
        })
    }
    return models.BusTimetable{
        Header:   fmt.Sprintf("%s → %s 고속버스 시간표 (%s 기준)", dep, arr, displayDate),
        Records:  records,
        Fallback: true,
    }
}
