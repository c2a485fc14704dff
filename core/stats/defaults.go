package stats

// DefaultAliases maps cleaned provider labels to the canonical field ids
// exposed by the API.
var DefaultAliases = map[string]string{
	"matchesplayed":  "matches",
	"top1":           "wins",
	"killspermatch":  "kpg",
	"killsperminute": "kpm",
	"minutesplayed":  "minutes",
}

// DefaultBlacklist lists canonical ids that are never returned.
var DefaultBlacklist = []string{
	"score",
	"score_",
	"scorepermatch",
	"scorepermatch_",
	"scoreperminute",
	"scoreperminute_",
	"trnrating",
	"trnrating_",
}
