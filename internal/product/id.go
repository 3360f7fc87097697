package product

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Origin tells where an ID was assigned.
type Origin uint8

const (
	// OriginRemote ids come from the remote service and can be used in
	// update and delete requests.
	OriginRemote Origin = iota + 1
	// OriginLocal ids exist only in this process: mock data and products
	// created while the API is disabled.
	OriginLocal
)

func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginLocal:
		return "local"
	default:
		return "unknown"
	}
}

// ID identifies a product. Lookups compare the string form only, so a
// remote 3 and a local "3" are the same product for the wishlist and
// for search, while the origin decides whether the network is involved.
type ID struct {
	value  string
	origin Origin
}

// LocalPrefix starts every generated local id.
const LocalPrefix = "c"

func RemoteID(v string) ID { return ID{value: v, origin: OriginRemote} }

func LocalID(v string) ID { return ID{value: v, origin: OriginLocal} }

// NewLocalID generates "c<unix millis>".
func NewLocalID(now time.Time) ID {
	return LocalID(LocalPrefix + strconv.FormatInt(now.UnixMilli(), 10))
}

func (id ID) String() string { return id.value }

func (id ID) Origin() Origin { return id.origin }

func (id ID) IsZero() bool { return id.value == "" }

func (id ID) IsRemote() bool { return id.origin == OriginRemote && id.value != "" }

// Matches compares the string form.
func (id ID) Matches(s string) bool { return id.value == s }

// MarshalJSON writes numeric remote ids as JSON numbers and everything
// else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.origin == OriginRemote {
		if _, err := strconv.ParseInt(id.value, 10, 64); err == nil {
			return []byte(id.value), nil
		}
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts a number or a string. Decoded ids are remote:
// only the remote service sends us JSON ids.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RemoteID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = RemoteID(n.String())
	return nil
}
