package locations

import (
	"errors"
	"strings"
)

var (
	ErrInvalidZone = errors.New("invalid zone")
)

// Zone es una rescue zone: código corto => (Name, Country) de una Location.
type Zone struct {
	Code    string
	Name    string
	Country string
}

// Mapeo fijo. El orden es el que ve la app al elegir zona.
var zones = []Zone{
	{Code: "koh-phangan", Name: "Koh Phangan", Country: "Thailand"},
	{Code: "koh-samui", Name: "Koh Samui", Country: "Thailand"},
	{Code: "koh-tao", Name: "Koh Tao", Country: "Thailand"},
	{Code: "bangkok", Name: "Bangkok", Country: "Thailand"},
	{Code: "chiang-mai", Name: "Chiang Mai", Country: "Thailand"},
	{Code: "phuket", Name: "Phuket", Country: "Thailand"},
	{Code: "bali", Name: "Bali", Country: "Indonesia"},
}

func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

func ZoneByCode(code string) (Zone, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Zone{}, ErrInvalidZone
	}
	for _, z := range zones {
		if z.Code == code {
			return z, nil
		}
	}
	return Zone{}, ErrInvalidZone
}
