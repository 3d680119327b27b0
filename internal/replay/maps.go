package replay

// mapNames maps the raw map identifiers found in replay headers to display
// names. Identifiers missing from the table are echoed back raw so new maps
// still show up, just unprettily.
var mapNames = map[string]string{
	"Conquete_2x2_BlackForest":      "Black Forest",
	"Conquete_2x2_Chemical":         "Chemical",
	"Conquete_2x2_DeathRow":         "Death Row",
	"Conquete_2x2_Geisa":            "Geisa",
	"Conquete_2x2_IronWaters":       "Iron Waters",
	"Conquete_2x2_MountRiver":       "Mount River",
	"Conquete_2x2_Rift":             "Rift",
	"Conquete_2x2_ThreeMileIsland":  "Three Mile Island",
	"Conquete_2x2_TwinCities":       "Twin Cities",
	"Conquete_2x2_TwoLakes":         "Two Lakes",
	"Conquete_2x2_TwoWays":          "Two Ways",
	"Conquete_2x2_Vertigo":          "Vertigo",
	"Conquete_3x3_Cyrus":            "Cyrus",
	"Conquete_3x3_Dangerhills":      "Danger Hills",
	"Conquete_3x3_Loop":             "Loop",
	"Conquete_3x3_Ripple":           "Ripple",
	"Conquete_4x4_Volcano":          "Volcano",
	"Conquete_4x4_AirportConquest":  "Airport",
}

// MapName resolves a raw map identifier to its display name.
func MapName(id string) string {
	if name, ok := mapNames[id]; ok {
		return name
	}
	return id
}
