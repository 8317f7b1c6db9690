package game

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"lukechampine.com/frand"
)

// newGameID returns a 24-character hex id: a 4-byte big-endian timestamp
// followed by 8 random bytes, so ids sort roughly by creation time.
func newGameID() string {
	b := make([]byte, 12)
	binary.BigEndian.PutUint32(b, uint32(time.Now().Unix()))
	frand.Read(b[4:])
	return hex.EncodeToString(b)
}

// IDTime returns the creation time encoded in an id made by NewGame, and
// false if id is not in that form.
func IDTime(id string) (time.Time, bool) {
	b, err := hex.DecodeString(id)
	if err != nil || len(b) != 12 {
		return time.Time{}, false
	}
	return time.Unix(int64(binary.BigEndian.Uint32(b[:4])), 0), true
}
