package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
)

// Values are stored with a one-byte codec prefix. JSON is tried first for
// debuggability; values JSON cannot represent (channels never reach here,
// but e.g. NaN floats or custom binary types do) fall back to gob.
const (
	codecJSON = 'j'
	codecGob  = 'g'
)

// SetJSON serializes v and stores it under namespace/key.
func SetJSON(ctx context.Context, c Cache, namespace, key string, v interface{}) error {
	encoded, err := encodeValue(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, namespace, key, encoded)
}

// GetJSON loads namespace/key into dest. Returns false on miss.
func GetJSON(ctx context.Context, c Cache, namespace, key string, dest interface{}) (bool, error) {
	raw, ok, err := c.Get(ctx, namespace, key)
	if err != nil || !ok {
		return false, err
	}
	if err := decodeValue(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func encodeValue(v interface{}) ([]byte, error) {
	if data, err := json.Marshal(v); err == nil {
		return append([]byte{codecJSON}, data...), nil
	}

	var buf bytes.Buffer
	buf.WriteByte(codecGob)
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("value not serializable as JSON or gob: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeValue(raw []byte, dest interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("empty cache value")
	}
	switch raw[0] {
	case codecJSON:
		return json.Unmarshal(raw[1:], dest)
	case codecGob:
		return gob.NewDecoder(bytes.NewReader(raw[1:])).Decode(dest)
	default:
		return fmt.Errorf("unknown cache codec prefix %q", raw[0])
	}
}
