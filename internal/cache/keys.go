package cache

import "fmt"

// Cache key builders. One key per read view; writers invalidate the keys
// their tables feed.
const (
	KeyPendingLeave    = "pending:leave"
	KeyPendingOvertime = "pending:overtime"
	KeyDashboard       = "dashboard"
)

// KeyOwnLeave is the cache key for one employee's leave list.
func KeyOwnLeave(ownerID string) string {
	return fmt.Sprintf("own:leave:%s", ownerID)
}

// KeyOwnOvertime is the cache key for one employee's overtime list.
func KeyOwnOvertime(ownerID string) string {
	return fmt.Sprintf("own:overtime:%s", ownerID)
}

// KeyAttendanceReport is the cache key for a monthly attendance summary.
func KeyAttendanceReport(year, month int) string {
	return fmt.Sprintf("report:attendance:%04d-%02d", year, month)
}

// KeyLeaveReport is the cache key for a monthly leave summary.
func KeyLeaveReport(year, month int) string {
	return fmt.Sprintf("report:leave:%04d-%02d", year, month)
}

// PatternReports matches every cached report.
const PatternReports = "report:*"
