package utils

import (
    "strconv"
    "strings"
    "time"
)

// FormatPrice renders a fare as a thousands-grouped amount with the 원
// suffix ("55000" -> "55,000원"). Non-numeric values pass through as-is,
// since the upstream occasionally returns preformatted strings.
func FormatPrice(value interface{}) string {
    switch v := value.(type) {
    case nil:
        return ""
    case int:
        return GroupDigits(int64(v)) + "원"
    case int64:
        return GroupDigits(v) + "원"
    case float64:
        // JSON numbers decode as float64
        return GroupDigits(int64(v)) + "원"
    case string:
        n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
        if err != nil {
            return v
        }
        return GroupDigits(n) + "원"
    default:
        return ""
    }
}

// GroupDigits inserts comma separators every three digits.
func GroupDigits(n int64) string {
    s := strconv.FormatInt(n, 10)
    neg := false
    if strings.HasPrefix(s, "-") {
        neg = true
        s = s[1:]
    }
    var parts []string
    for len(s) > 3 {
        parts = append([]string{s[len(s)-3:]}, parts...)
        s = s[:len(s)-3]
    }
    parts = append([]string{s}, parts...)
    out := strings.Join(parts, ",")
    if neg {
        out = "-" + out
    }
    return out
}

// FormatPlanTime extracts HH:MM from an upstream plan-time digit string in
// YYYYMMDDHHMM... layout. Shorter strings pass through unformatted; the
// frontend tolerates raw values.
func FormatPlanTime(s string) string {
    if len(s) >= 12 {
        return s[8:10] + ":" + s[10:12]
    }
    return s
}

// NormalizeDate accepts YYYY-MM-DD or YYYYMMDD and returns the compact
// YYYYMMDD form the upstreams expect. Unparseable input yields today.
func NormalizeDate(s string) string {
    if s != "" {
        if strings.Contains(s, "-") {
            if t, err := time.Parse("2006-01-02", s); err == nil {
                return t.Format("20060102")
            }
        } else if _, err := time.Parse("20060102", s); err == nil {
            return s
        }
    }
    return time.Now().Format("20060102")
}

// DisplayDate renders a compact YYYYMMDD date as YYYY-MM-DD. Input that is
// not a compact date is returned unchanged.
func DisplayDate(s string) string {
    if t, err := time.Parse("20060102", s); err == nil {
        return t.Format("2006-01-02")
    }
    return s
}
