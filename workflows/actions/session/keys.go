// Package session provides the actions that make up the device capture
// sequence: lock, settle, start session, await the manual acknowledgement,
// unlock, and an optional explicit session end.
package session

// Store keys shared by the capture actions
const (
	// KeyDeviceLocked is set once the lock call succeeds
	KeyDeviceLocked = "device/locked"

	// KeySessionID holds the capture session identifier, set at most once
	KeySessionID = "session/id"

	// KeySessionURL holds the derived waterfall URL for the session
	KeySessionURL = "session/url"
)
