package transit

import (
    "encoding/json"
    "fmt"
    "log"
    "os"
    "sort"
    "strings"

    "github.com/skyallone/project07/models"
)

// railStationCodes maps station display names to TAGO rail identifiers.
// Static, immutable at runtime.
var railStationCodes = map[string]string{
    "서울": "NAT010000", "용산": "NAT010032", "노량진": "NAT010058", "영등포": "NAT010091",
    "신도림": "NAT010106", "청량리": "NAT130126", "왕십리": "NAT130104", "옥수": "NAT130070",
    "서빙고": "NAT130036", "광운대": "NAT130182", "상봉": "NAT020040", "수서": "NATH30000",
    "부산": "NAT014445", "구포": "NAT014281", "사상": "NAT014331", "화명": "NAT014244",
    "부전": "NAT750046", "동래": "NAT750106", "센텀": "NAT750161", "신해운대": "NAT750189",
    "송정": "NAT750254", "기장": "NAT750329", "좌천": "NAT750412",
    "대전": "NAT011668", "서대전": "NAT030057", "신탄진": "NAT011524", "흑석리": "NAT030173",
    "동대구": "NAT013271", "대구": "NAT013239", "서대구": "NAT013189",
    "광주송정": "NAT031857", "광주": "NAT883012", "서광주": "NAT882936", "효천": "NAT882904",
    "울산(통도사)": "NATH13717", "북울산": "NAT750781", "남창": "NAT750560", "덕하": "NAT750653",
    "태화강": "NAT750726", "효문": "NAT750760",
}

// terminals is the bus terminal reference dataset, loaded once at startup
// and read-only afterwards.
var terminals []models.Terminal

// LoadTerminals reads the bus terminal reference file. Must be called once
// before bus lookups; the table is immutable afterwards.
func LoadTerminals(path string) error {
    data, err := os.ReadFile(path)
    if err != nil {
        return fmt.Errorf("reading terminal data: %w", err)
    }
    var loaded []models.Terminal
    if err := json.Unmarshal(data, &loaded); err != nil {
        return fmt.Errorf("parsing terminal data: %w", err)
    }
    terminals = loaded
    log.Printf("[transit] Loaded %d bus terminals from %s", len(terminals), path)
    return nil
}

// ResolveRail maps a station display name to its TAGO rail code.
func ResolveRail(name string) (string, bool) {
    code, ok := railStationCodes[strings.TrimSpace(name)]
    return code, ok
}

// ResolveBus maps a terminal display name to its terminal record.
func ResolveBus(name string) (models.Terminal, bool) {
    name = strings.TrimSpace(name)
    for _, t := range terminals {
        if strings.TrimSpace(t.Name) == name {
            return t, true
        }
    }
    return models.Terminal{}, false
}

// RailStations returns the known rail station names, sorted.
func RailStations() []string {
    names := make([]string, 0, len(railStationCodes))
    for name := range railStationCodes {
        names = append(names, name)
    }
    sort.Strings(names)
    return names
}

// Terminals returns the loaded terminal records sorted by name.
func Terminals() []models.Terminal {
    out := make([]models.Terminal, len(terminals))
    copy(out, terminals)
    sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
    return out
}
