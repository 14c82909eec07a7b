// Package metrics defines the Collector interface for recording chat
// server metrics, adapted from infodancer-pop3d/internal/metrics to this
// service's domain: logins, mailbox depth, chat room occupancy, and
// best-effort broadcast drops.
package metrics

// Collector records chat server metrics. Call sites never branch on
// whether metrics are enabled — NoopCollector absorbs every call when
// they are not.
type Collector interface {
	// LoginAttempt records the outcome of a login attempt: "invalid",
	// "already", or "success".
	LoginAttempt(result string)

	// ActiveUsers sets the current count of online users.
	ActiveUsers(n int)

	// MailboxAppend records a successful append and the mailbox's
	// resulting depth.
	MailboxAppend(depth int)

	// MailboxOverflow records a dropped append due to a full mailbox.
	MailboxOverflow()

	// ChatRoomSize sets the current number of joined Chat endpoints.
	ChatRoomSize(n int)

	// BroadcastDropped records one message that could not be delivered
	// to a specific endpoint (full buffer or tripped breaker).
	BroadcastDropped()
}
