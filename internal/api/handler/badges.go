package handler

import "nerine_frontend/internal/domain/model"

type BadgeInfo struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// badgeCatalog maps a badge type tag to its display data. The tags come from
// the backend's award logic; an unknown tag renders without catalog data
// rather than being dropped.
var badgeCatalog = map[string]BadgeInfo{
	"pwn": {
		Icon: "pwn.png",
		Name: "Poison Puffcap",
		Description: `"Hello, Mr. High Major Commodore of the First Legion ` +
			`Third Multiplication Double Admiral Artillery Vanguard Company Sir!"`,
	},
	"rev": {
		Icon:        "rev.png",
		Name:        "Severed Octopus Tentacle",
		Description: "I don't think the owner is going to be very happy with this",
	},
	"web": {
		Icon: "web.png",
		Name: "Badge Not Found",
		Description: "I couldn't find the image in chromium source so I " +
			"resorted to copying it pixel by pixel",
	},
	"crypto": {
		Icon:        "crypto.png",
		Name:        "Cat Ears",
		Description: "Meow.",
	},
	"misc": {
		Icon:        "misc.png",
		Name:        "Pickle",
		Description: "Dill with it.",
	},
}

// badgeInfoFor collects catalog entries for the badge types actually earned,
// so the page payload only carries what it renders.
func badgeInfoFor(entries []model.LeaderboardEntry) map[string]BadgeInfo {
	out := map[string]BadgeInfo{}
	for _, entry := range entries {
		for _, badge := range entry.Extra.Badges {
			if info, ok := badgeCatalog[badge.Type]; ok {
				out[badge.Type] = info
			}
		}
	}
	return out
}
