package main

import (
	"database/sql"
	"strconv"
	"strings"
)

// lapTime returns the stored text of a qualifying time such as "1:23.456" and
// its length in milliseconds. Unparseable text keeps the string with no millis.
func lapTime(s sql.NullString) (*string, *int64) {
	text := nullStr(s)
	if text == nil {
		return nil, nil
	}
	ms, ok := parseLapMillis(*text)
	if !ok {
		return text, nil
	}
	return text, &ms
}

// parseLapMillis accepts "M:SS.mmm" or "SS.mmm".
func parseLapMillis(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	var minutes int64
	if i := strings.IndexByte(s, ':'); i >= 0 {
		m, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil || m < 0 {
			return 0, false
		}
		minutes = m
		s = s[i+1:]
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || secs < 0 || (minutes > 0 && secs >= 60) {
		return 0, false
	}
	return minutes*60_000 + int64(secs*1000+0.5), true
}
