package metrics

// NoopCollector is a no-op implementation of Collector, the default when
// metrics are disabled.
type NoopCollector struct{}

func (NoopCollector) LoginAttempt(result string) {}
func (NoopCollector) ActiveUsers(n int)          {}
func (NoopCollector) MailboxAppend(depth int)    {}
func (NoopCollector) MailboxOverflow()           {}
func (NoopCollector) ChatRoomSize(n int)         {}
func (NoopCollector) BroadcastDropped()          {}
