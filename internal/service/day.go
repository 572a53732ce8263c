package service

import "time"

// Quota days are pinned to UTC+1 so resets never depend on the host
// timezone configuration.
var quotaZone = time.FixedZone("UTC+1", 60*60)

// dayString formats t as a YYYY-MM-DD calendar day in the quota timezone.
func dayString(t time.Time) string {
	return t.In(quotaZone).Format("2006-01-02")
}
