// Package directory implements the user directory and per-user mailbox:
// name validation, login/logout lifecycle, and the FIFO mailbox each user
// owns. It is read-mostly and safe for unbounded concurrent callers,
// following the lock-free sync.Map pattern webitel-im-delivery-service's
// registry.Hub uses for its user-keyed cells.
package directory

import "sync"

// LoginOutcome is the result of a login attempt, carried in the
// LogInReply.loginstate wire field by the caller.
type LoginOutcome int

const (
	LoginInvalid LoginOutcome = iota
	LoginAlready
	LoginSuccess
)

// ValidName reports whether name is non-empty and every code point in it
// falls in the inclusive range 65..122 (ASCII 'A' through 'z').
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < 65 || r > 122 {
			return false
		}
	}
	return true
}

// UserDirectory is the set of UserRecords keyed by name. It owns every
// record it ever creates for the life of the process — logout never
// removes one, only flips its online flag.
type UserDirectory struct {
	users sync.Map // name string -> *UserRecord
}

// New returns an empty UserDirectory.
func New() *UserDirectory {
	return &UserDirectory{}
}

// Login validates name, then either creates a fresh online record, flips an
// existing offline record back online, or reports ALREADY if a session is
// already live under that name. The LoadOrStore/compare-and-set pairing
// below is atomic with respect to concurrent logins of the same name: of
// any two simultaneous attempts for a fresh name, exactly one observes
// SUCCESS and the other ALREADY.
func (d *UserDirectory) Login(name string) (LoginOutcome, *UserRecord) {
	if !ValidName(name) {
		return LoginInvalid, nil
	}

	val, loaded := d.users.LoadOrStore(name, newUserRecord(name))
	rec := val.(*UserRecord)
	if !loaded {
		// We just created and stored a fresh, already-online record.
		return LoginSuccess, rec
	}

	if rec.tryGoOnline() {
		return LoginSuccess, rec
	}
	return LoginAlready, nil
}

// tryGoOnline flips online from false to true, reporting whether it won
// the race to do so.
func (u *UserRecord) tryGoOnline() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.online {
		return false
	}
	u.online = true
	return true
}

// Logout flips the named record's online flag to false. Not an error if
// the record doesn't exist or is already offline; the mailbox is untouched.
func (d *UserDirectory) Logout(name string) {
	if val, ok := d.users.Load(name); ok {
		val.(*UserRecord).setOnline(false)
	}
}

// Lookup returns the record for name, if one has ever been created.
func (d *UserDirectory) Lookup(name string) (*UserRecord, bool) {
	val, ok := d.users.Load(name)
	if !ok {
		return nil, false
	}
	return val.(*UserRecord), true
}

// SnapshotOnline returns the names of all currently online records, in
// unspecified order.
func (d *UserDirectory) SnapshotOnline() []string {
	var names []string
	d.users.Range(func(key, value any) bool {
		rec := value.(*UserRecord)
		if rec.Online() {
			names = append(names, rec.Name)
		}
		return true
	})
	return names
}
