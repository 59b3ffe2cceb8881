package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultTeamColor is used for team codes without an entry, such as defunct franchises
const DefaultTeamColor = "808080"

// teamColors maps a team code to its bar colour (hex, no leading #)
var teamColors = map[string]string{
	"ATL": "ff0000", // red
	"BOS": "008000", // green
	"BRK": "000000", // black
	"CHO": "40e0d0", // turquoise
	"CHI": "8b0000", // darkred
	"CLE": "800000", // maroon
	"DAL": "0000ff", // blue
	"DEN": "00008b", // darkblue
	"DET": "b8860b", // darkgoldenrod
	"GSW": "ffff00", // yellow
	"HOU": "dc143c", // crimson
	"IND": "000080", // navy
	"LAC": "0000ff",
	"LAL": "800080", // purple
	"MEM": "000080",
	"MIA": "ffc0cb", // pink
	"MIL": "008000",
	"MIN": "00008b",
	"NOP": "ffd700", // gold
	"NYK": "ffa500", // orange
	"OKC": "ffa500",
	"ORL": "0000ff",
	"PHI": "0000ff",
	"PHO": "800080",
	"POR": "ff0000",
	"SAC": "800080",
	"SAS": "808080", // gray
	"TOR": "ff0000",
	"UTA": "000080",
	"WAS": "000080",
}

// TeamColorHex returns the hex colour for a team, falling back to DefaultTeamColor
func TeamColorHex(team string) string {
	if hex, ok := teamColors[team]; ok {
		return hex
	}
	return DefaultTeamColor
}

// TeamColor returns the bar colour for a team
func TeamColor(team string) drawing.Color {
	return drawing.ColorFromHex(TeamColorHex(team))
}
