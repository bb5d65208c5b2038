package signature

import (
	"fmt"
	"strings"
	"time"
)

// MaxTimestampSkew bounds how far a signed request's timestamp may drift
// from server time before the signature is considered replayed or stale.
const MaxTimestampSkew = 300 * time.Second

var timeNow = time.Now

// Position is a grid coordinate referenced inside a signed message.
type Position struct {
	X int
	Y int
}

// Each operation signs its own canonical template so a signature captured
// for one operation can never be replayed against another.

func ClaimMessage(itemID string, timestamp int64) string {
	return fmt.Sprintf("Claim Item\nID: %s\nTime: %d", itemID, timestamp)
}

func ViewKeyMessage(itemID string, timestamp int64) string {
	return fmt.Sprintf("View Private Key\nID: %s\nTime: %d", itemID, timestamp)
}

func ParcelUpdateMessage(x, y int, text, link, imageStatus string, timestamp int64) string {
	return fmt.Sprintf("Update Land (%d, %d)\nText: %s\nLink: %s\nImage: %s\nTime: %d",
		x, y, text, link, imageStatus, timestamp)
}

func BatchUpdateMessage(positions []Position, text, link string, timestamp int64) string {
	coords := make([]string, len(positions))
	for i, pos := range positions {
		coords[i] = fmt.Sprintf("(%d,%d)", pos.X, pos.Y)
	}
	return fmt.Sprintf("Batch Update %d Lands\n%s\nText: %s\nLink: %s\nTime: %d",
		len(positions), strings.Join(coords, ", "), text, link, timestamp)
}

// ValidTimestamp reports whether a signed timestamp (unix seconds) is within
// the allowed skew of server time.
func ValidTimestamp(timestamp int64) bool {
	diff := timeNow().Unix() - timestamp
	if diff < 0 {
		diff = -diff
	}
	return diff <= int64(MaxTimestampSkew/time.Second)
}
