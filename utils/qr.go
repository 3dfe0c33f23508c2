package utils

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// QRData is the payload printed into a table's QR code.
type QRData struct {
	TableID       uint   `json:"table_id"`
	ReservationID uint   `json:"reservation_id"`
	Name          string `json:"reservation_name"`
	AIProvider    string `json:"ai_provider"`
}

// ParseQRData accepts either a JSON object or a key1=val1&key2=val2 string,
// the two encodings the printed codes have used.
func ParseQRData(raw string) QRData {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "{") {
		var viaJSON struct {
			TableID         json.Number `json:"table_id"`
			ReservationID   json.Number `json:"reservation_id"`
			ReservationName string      `json:"reservation_name"`
			AIProvider      string      `json:"ai_provider"`
		}
		if err := json.Unmarshal([]byte(raw), &viaJSON); err == nil {
			return QRData{
				TableID:       numberToUint(viaJSON.TableID),
				ReservationID: numberToUint(viaJSON.ReservationID),
				Name:          viaJSON.ReservationName,
				AIProvider:    viaJSON.AIProvider,
			}
		}
	}

	// fallback: ampersand-separated pairs
	var data QRData
	for _, pair := range strings.Split(raw, "&") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if dk, err := url.QueryUnescape(k); err == nil {
			k = dk
		}
		if dv, err := url.QueryUnescape(v); err == nil {
			v = dv
		}
		switch k {
		case "table_id":
			data.TableID = parseUint(v)
		case "reservation_id":
			data.ReservationID = parseUint(v)
		case "reservation_name":
			data.Name = v
		case "ai_provider":
			data.AIProvider = v
		}
	}
	return data
}

func parseUint(s string) uint {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

func numberToUint(n json.Number) uint {
	return parseUint(n.String())
}
