// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// Actor is the identity resolved for an authenticated request.
//
// It lives in this package rather than the user domain so that middleware
// and domain handlers can share it without an import cycle.
type Actor struct {
	// ID is the stable account identifier (UUIDv7).
	ID string
	// Nickname is the unique display handle of the account.
	Nickname string
}
