// Package division maps decoded deck codes to division names and alliances.
package division

// Alliance tags. UnknownAlliance never matches anything, including itself;
// see SameAlliance.
const (
	AllianceNATO    = "NATO"
	AlliancePACT    = "PACT"
	UnknownAlliance = "Unknown"
)

// UnknownDivision is the sentinel for codes that are empty, fail to decode,
// or decode to an id missing from the table.
const UnknownDivision = "Unknown"

// Division is one row of the static descriptor table.
type Division struct {
	ID       int
	Name     string
	Alliance string
}

// Table is the shipped division descriptor table for the current game
// version. Regenerate alongside game patches; ids are stable across patches,
// new divisions only append.
var Table = []Division{
	{ID: 3, Name: "3rd Armored Division", Alliance: AllianceNATO},
	{ID: 5, Name: "8th Infantry Division", Alliance: AllianceNATO},
	{ID: 7, Name: "82nd Airborne", Alliance: AllianceNATO},
	{ID: 9, Name: "101st Airmobile", Alliance: AllianceNATO},
	{ID: 11, Name: "11e Division Parachutiste", Alliance: AllianceNATO},
	{ID: 13, Name: "5e Division Blindée", Alliance: AllianceNATO},
	{ID: 15, Name: "2nd Infantry Division", Alliance: AllianceNATO},
	{ID: 17, Name: "1st Armored Division", Alliance: AllianceNATO},
	{ID: 19, Name: "4th Armoured Division", Alliance: AllianceNATO},
	{ID: 21, Name: "2. PanzerGrenadierDivision", Alliance: AllianceNATO},
	{ID: 23, Name: "5. Panzerdivision", Alliance: AllianceNATO},
	{ID: 25, Name: "TKS Koszalin", Alliance: AlliancePACT},
	{ID: 27, Name: "Berliner Gruppierung", Alliance: AlliancePACT},
	{ID: 29, Name: "24th Infantry Division", Alliance: AllianceNATO},
	{ID: 31, Name: "35th Infantry Division", Alliance: AllianceNATO},
	{ID: 102, Name: "79-ya Gv. Tankovaya Diviziya", Alliance: AlliancePACT},
	{ID: 104, Name: "39-ya Gv. Motostrelkovaya Diviziya", Alliance: AlliancePACT},
	{ID: 106, Name: "35-ya Gv. Desantno-Shturmovaya Brigada", Alliance: AlliancePACT},
	{ID: 108, Name: "119-ya Gv. Tankovaya Diviziya", Alliance: AlliancePACT},
	{ID: 110, Name: "27-ya Gv. Motostrelkovaya Diviziya", Alliance: AlliancePACT},
	{ID: 112, Name: "57-ya Gv. Motostrelkovaya Diviziya", Alliance: AlliancePACT},
	{ID: 114, Name: "4-ya Gv. Tankovaya Diviziya Kantemirovskaya", Alliance: AlliancePACT},
	{ID: 116, Name: "7. Panzerdivision", Alliance: AlliancePACT},
	{ID: 118, Name: "4. MSD", Alliance: AlliancePACT},
	{ID: 120, Name: "Unternehmen Zentrum", Alliance: AlliancePACT},
	{ID: 122, Name: "56-ya Gv. Desantno-Shturmovaya Brigada", Alliance: AlliancePACT},
	{ID: 124, Name: "6-ya Gv. Motostrelkovaya Diviziya", Alliance: AlliancePACT},
	{ID: 126, Name: "20. Panzergrenadierdivision", Alliance: AlliancePACT},
}

// SameAlliance reports whether two alliance tags place players on the same
// side. Unknown tags never match, so undecodable decks always classify as
// enemies rather than silently mis-pairing a team.
func SameAlliance(a, b string) bool {
	if a == UnknownAlliance || b == UnknownAlliance {
		return false
	}
	return a == b
}
