package transit

import (
    "strconv"

    "github.com/skyallone/project07/models"
    "github.com/skyallone/project07/utils"
)

// NormalizeRail converts raw rail items into canonical schedule records.
// Pure: the same input always yields the same records.
func NormalizeRail(items []RawItem) []models.ScheduleRecord {
    records := []models.ScheduleRecord{}
    for _, item := range items {
        depTime := stringField(item, "depPlandTime", "depplandtime")
        arrTime := stringField(item, "arrPlandTime", "arrplandtime")
        if depTime == "" || arrTime == "" {
            continue
        }

        price := anyField(item, "adultCharge", "adultcharge")
        if price == nil {
            price = 50000
        }
        carrier := stringField(item, "trainGradeName", "traingradename")
        if carrier == "" {
            carrier = "KTX"
        }

        records = append(records, models.ScheduleRecord{
            Mode:          models.ModeRail,
            CarrierLabel:  carrier,
            VehicleNo:     stringField(item, "trainNo", "trainno"),
            DepartureTime: utils.FormatPlanTime(depTime),
            ArrivalTime:   utils.FormatPlanTime(arrTime),
            PriceLabel:    utils.FormatPrice(price),
            SeatAvailable: true,
            SeatInfo:      "예약가능",
        })
    }
    return records
}

// NormalizeBus converts raw express bus items into canonical schedule records.
func NormalizeBus(items []RawItem) []models.ScheduleRecord {
    records := []models.ScheduleRecord{}
    for _, item := range items {
        depTime := stringField(item, "depPlandTime", "depplandtime")
        arrTime := stringField(item, "arrPlandTime", "arrplandtime")
        if depTime == "" || arrTime == "" {
            continue
        }

        price := anyField(item, "charge")
        if price == nil {
            price = 25000
        }

        records = append(records, models.ScheduleRecord{
            Mode:          models.ModeBus,
            CarrierLabel:  stringField(item, "companyNm", "companynm"),
            DepartureTime: utils.FormatPlanTime(depTime),
            ArrivalTime:   utils.FormatPlanTime(arrTime),
            PriceLabel:    utils.FormatPrice(price),
            SeatAvailable: true,
        })
    }
    return records
}

// stringField returns the first non-empty value among the given keys,
// rendered as a string. The upstream emits the same logical field under
// different casings depending on deployment.
func stringField(item RawItem, keys ...string) string {
    v := anyField(item, keys...)
    switch s := v.(type) {
    case nil:
        return ""
    case string:
        return s
    case float64:
        // JSON numbers decode as float64; plan times and train numbers
        // are integral.
        return strconv.FormatInt(int64(s), 10)
    default:
        return ""
    }
}

func anyField(item RawItem, keys ...string) interface{} {
    for _, key := range keys {
        if v, ok := item[key]; ok && v != nil {
            if s, isStr := v.(string); isStr && s == "" {
                continue
            }
            return v
        }
    }
    return nil
}
