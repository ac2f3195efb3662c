package lookup

// ShipTypeLabel returns a human-readable label for an AIS ship-type code
// (ITU-R M.1371 table), or "Unknown" if the code is not in the table.
func ShipTypeLabel(code int) string {
	if label, ok := shipTypeLabels[code]; ok {
		return label
	}
	if code >= 20 && code <= 29 {
		return "Wing in ground"
	}
	if code >= 40 && code <= 49 {
		return "High speed craft"
	}
	if code >= 60 && code <= 69 {
		return "Passenger"
	}
	if code >= 70 && code <= 79 {
		return "Cargo"
	}
	if code >= 80 && code <= 89 {
		return "Tanker"
	}
	if code >= 90 && code <= 99 {
		return "Other"
	}
	return "Unknown"
}

var shipTypeLabels = map[int]string{
	0:  "Not available",
	30: "Fishing",
	31: "Towing",
	32: "Towing (large)",
	33: "Dredging or underwater ops",
	34: "Diving ops",
	35: "Military ops",
	36: "Sailing",
	37: "Pleasure craft",
	50: "Pilot vessel",
	51: "Search and rescue vessel",
	52: "Tug",
	53: "Port tender",
	54: "Anti-pollution equipment",
	55: "Law enforcement",
	58: "Medical transport",
	59: "Noncombatant ship",
}
