package helper

import (
	"encoding/json"
	"log"
	"time"
)

const DateLayout = "2006-01-02"

func ToJSON(data interface{}) json.RawMessage {
	bytes, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal data: %v", err)
		return nil
	}
	return json.RawMessage(bytes)
}

// Excerpt 최대 limit 글자까지 자르고, 잘린 경우에만 "..." 를 붙인다
func Excerpt(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// FormatDate YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate YYYY-MM-DD 문자열을 UTC 자정으로 변환
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
