package postgres

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// Coordinates are stored in a single PostGIS geometry column. The wire form
// is hex-encoded EWKB: the format PostGIS emits when a geometry column is
// cast to text and accepts as text input, so the codec never needs a
// server-side conversion function. Only this file knows the encoding; domain
// and application code deal in plain latitude/longitude.

const pointSRID = 4326

const (
	ewkbPointType = 1
	ewkbSRIDFlag  = 0x20000000
)

// EncodePoint encodes a latitude/longitude pair as hex EWKB for an SRID 4326
// point. The encoding is exact for float64, so a full round trip loses no
// precision.
func EncodePoint(lat, lon float64) string {
	buf := make([]byte, 25)
	buf[0] = 1 // NDR, little endian
	binary.LittleEndian.PutUint32(buf[1:5], ewkbPointType|ewkbSRIDFlag)
	binary.LittleEndian.PutUint32(buf[5:9], pointSRID)
	binary.LittleEndian.PutUint64(buf[9:17], math.Float64bits(lon))
	binary.LittleEndian.PutUint64(buf[17:25], math.Float64bits(lat))
	return strings.ToUpper(hex.EncodeToString(buf))
}

// DecodePoint parses hex EWKB produced by EncodePoint or by PostGIS itself.
// Both byte orders are accepted; the SRID block is optional because plain WKB
// points omit it.
func DecodePoint(s string) (lat, lon float64, err error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return 0, 0, fmt.Errorf("decode point: %w", err)
	}
	if len(raw) < 21 {
		return 0, 0, fmt.Errorf("decode point: %d bytes is too short", len(raw))
	}
	var order binary.ByteOrder
	switch raw[0] {
	case 0:
		order = binary.BigEndian
	case 1:
		order = binary.LittleEndian
	default:
		return 0, 0, fmt.Errorf("decode point: unknown byte order marker %#x", raw[0])
	}
	typ := order.Uint32(raw[1:5])
	coords := raw[5:]
	if typ&ewkbSRIDFlag != 0 {
		if len(raw) < 25 {
			return 0, 0, fmt.Errorf("decode point: truncated SRID block")
		}
		coords = raw[9:]
	}
	if typ&^ewkbSRIDFlag != ewkbPointType {
		return 0, 0, fmt.Errorf("decode point: geometry type %d is not a point", typ&^ewkbSRIDFlag)
	}
	if len(coords) < 16 {
		return 0, 0, fmt.Errorf("decode point: truncated coordinates")
	}
	lon = math.Float64frombits(order.Uint64(coords[0:8]))
	lat = math.Float64frombits(order.Uint64(coords[8:16]))
	return lat, lon, nil
}
