package masks

import "strings"

func createBuiltInMasks() []Mask {
	return []Mask{
		{Name: "Tracks", Patterns: []Pattern{
			{Type: Inclusive, Regex: `(?i)\.(gpx|kml|kmz|geojson)$`},
		}},
		{Name: "Maps", Patterns: []Pattern{
			{Type: Inclusive, Regex: `(?i)\.(map|mbtiles|sqlite|db)$`},
			{Type: Exclusive, Regex: `(?i)-journal\.db$`},
		}},
		{Name: "Images", Patterns: []Pattern{
			{Type: Inclusive, Regex: `(?i)\.(png|jpe?g|gif|webp)$`},
		}},
	}
}

// BuiltIn returns a fresh copy of the masks every picker knows about.
func BuiltIn() []Mask {
	return createBuiltInMasks()
}

// Find looks a mask up by name, ignoring case.
func Find(name string, masks []Mask) (Mask, bool) {
	for _, m := range masks {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mask{}, false
}
