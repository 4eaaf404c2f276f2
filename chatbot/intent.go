package chatbot

import (
    "context"
    "fmt"
    "log"
    "regexp"
    "strings"
    "time"

    "github.com/skyallone/project07/models"
    "github.com/skyallone/project07/transit"
    "github.com/skyallone/project07/utils"
)

const maxInlineEntries = 2

// TransitSearcher is the slice of the transit pipeline the chatbot uses.
// *transit.Service implements it.
type TransitSearcher interface {
    SearchRail(ctx context.Context, dep, arr, date string) []models.ScheduleRecord
    SearchBus(ctx context.Context, dep, arr, date string) models.BusTimetable
}

// Responder routes a free-text message: date questions are answered
// directly, travel questions with an extractable route go through the
// transit pipeline, everything else is delegated to the completion backend.
type Responder struct {
    transit TransitSearcher
    ai      Completer
    now     func() time.Time
}

func NewResponder(transitSvc TransitSearcher, ai Completer) *Responder {
    return &Responder{transit: transitSvc, ai: ai, now: time.Now}
}

var (
    datePattern = regexp.MustCompile(`(오늘|지금|현재)\s*(날짜|date)`)

    // "서울에서 부산까지" / "서울발 부산행"
    routeFromToPattern = regexp.MustCompile(`([가-힣]+)(?:에서|발)\s*([가-힣]+)(?:까지|행|도착)`)
    // "서울-부산" / "서울~부산" / "서울→부산"
    routeDashPattern = regexp.MustCompile(`([가-힣]+)[-~→]+([가-힣]+)`)

    dashDatePattern    = regexp.MustCompile(`20\d{2}-\d{2}-\d{2}`)
    compactDatePattern = regexp.MustCompile(`20\d{6}`)

    travelKeywords = []string{"여행", "추천", "경로", "교통편", "버스", "버스 시간표", "버스 시간"}
)

// Respond answers the message. The second return value reports whether the
// answer came from the completion backend (those exchanges are the ones
// persisted to chat history).
func (r *Responder) Respond(ctx context.Context, message string) (string, bool) {
    message = strings.TrimSpace(message)

    if datePattern.MatchString(message) {
        return fmt.Sprintf("오늘 날짜는 %s 입니다.", r.now().Format("2006-01-02")), false
    }

    if r.hasTravelKeyword(message) {
        dep, arr := extractRoute(message)
        if dep != "" && arr != "" {
            date := r.extractDate(message)
            if r.routeKnown(dep, arr) {
                return r.transitAnswer(ctx, dep, arr, date), false
            }
            log.Printf("[chatbot] Route %s → %s not in any lookup table, delegating", dep, arr)
        }
    }

    return r.delegate(ctx, message), true
}

func (r *Responder) hasTravelKeyword(message string) bool {
    for _, kw := range travelKeywords {
        if strings.Contains(message, kw) {
            return true
        }
    }
    return false
}

// routeKnown reports whether the pair resolves in at least one mode's
// lookup table. A fully unknown pair is not a transit question worth
// answering with fallback data.
func (r *Responder) routeKnown(dep, arr string) bool {
    if _, ok := transit.ResolveRail(dep); ok {
        if _, ok := transit.ResolveRail(arr); ok {
            return true
        }
    }
    if _, ok := transit.ResolveBus(dep); ok {
        if _, ok := transit.ResolveBus(arr); ok {
            return true
        }
    }
    return false
}

func extractRoute(message string) (dep, arr string) {
    if m := routeFromToPattern.FindStringSubmatch(message); m != nil {
        return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
    }
    if m := routeDashPattern.FindStringSubmatch(message); m != nil {
        return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
    }
    return "", ""
}

// extractDate pulls a travel date from the message as YYYYMMDD,
// defaulting to today.
func (r *Responder) extractDate(message string) string {
    if strings.Contains(message, "내일") {
        return r.now().AddDate(0, 0, 1).Format("20060102")
    }
    if strings.Contains(message, "오늘") {
        return r.now().Format("20060102")
    }
    if m := dashDatePattern.FindString(message); m != "" {
        return strings.ReplaceAll(m, "-", "")
    }
    if m := compactDatePattern.FindString(message); m != "" {
        return m
    }
    return r.now().Format("20060102")
}

// transitAnswer composes the multi-line textual summary: a route header,
// then a rail and a bus section capped at two entries each. Both searches
// degrade to sample data on their own, so the sections are never empty.
func (r *Responder) transitAnswer(ctx context.Context, dep, arr, date string) string {
    trains := r.transit.SearchRail(ctx, dep, arr, date)
    buses := r.transit.SearchBus(ctx, dep, arr, date)

    var b strings.Builder
    fmt.Fprintf(&b, "%s → %s (%s)", dep, arr, utils.DisplayDate(date))

    b.WriteString("\n[기차]")
    for i, t := range trains {
        if i >= maxInlineEntries {
            break
        }
        fmt.Fprintf(&b, "\n- %s %s~%s %s", t.CarrierLabel, t.DepartureTime, t.ArrivalTime, t.PriceLabel)
    }

    b.WriteString("\n[고속버스]")
    for i, bus := range buses.Records {
        if i >= maxInlineEntries {
            break
        }
        fmt.Fprintf(&b, "\n- %s~%s %s %s", bus.DepartureTime, bus.ArrivalTime, bus.CarrierLabel, bus.PriceLabel)
    }
    if buses.Fallback {
        b.WriteString("\n(실제 시간표는 예매사이트에서 확인하세요)")
    }

    return b.String()
}

func (r *Responder) delegate(ctx context.Context, message string) string {
    answer, err := r.ai.Generate(ctx, message)
    if err != nil {
        log.Printf("[chatbot] Completion backend error: %v", err)
        return "죄송합니다. AI 응답 생성에 실패했습니다."
    }
    return strings.TrimSpace(answer)
}
