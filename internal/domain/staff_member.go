package domain

import (
	"fmt"
	"time"
)

// Ranks relevant to staff tracking. Group members below MinStaffRank are not
// tracked; ExcludedRank is the bot account rank and never syncs.
const (
	MinStaffRank = 3
	ExcludedRank = 254
	DemotionRank = 3
)

// DemotionRankName is the rank name assigned on demotion.
const DemotionRankName = "Helper"

// StrikeDemotionThreshold is the number of active strikes at which a staff
// member becomes eligible for demotion. Policy constant, not enforced by the
// strike ledger itself.
const StrikeDemotionThreshold = 2

var rankNames = map[int]string{
	3:  "Helper",
	4:  "Trial Moderator",
	5:  "Moderator",
	6:  "Senior Moderator",
	7:  "Head Moderator",
	8:  "Administrator",
	9:  "Senior Administrator",
	10: "Owner",
}

// RankName resolves a numeric group rank to its display name.
func RankName(rank int) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}
	return fmt.Sprintf("Rank %d", rank)
}

// StaffMember models a tracked group member eligible for hour tracking and
// quota enforcement. UserID is the external (Roblox) user id and is unique
// across the store.
type StaffMember struct {
	ID       string
	UserID   string
	Username string
	Rank     int
	RankName string
	JoinedAt time.Time
}
