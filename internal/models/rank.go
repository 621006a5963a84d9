package models

// Rank thresholds. A user's rank within a forum is a plain integer; tiers
// are named bands over it. The moderator cutoff is exactly rank >= 200.
const (
	ModeratorRank = 200
	AdminRank     = 1000
)

// RankTier is a named privilege band derived from a forum rank.
type RankTier int

const (
	TierMember RankTier = iota
	TierModerator
	TierAdmin
)

// TierForRank maps a nullable forum rank onto a named tier. A missing rank
// (no user_in_forum row, or a row without a rank) is a plain member.
func TierForRank(rank *int) RankTier {
	switch {
	case rank == nil:
		return TierMember
	case *rank >= AdminRank:
		return TierAdmin
	case *rank >= ModeratorRank:
		return TierModerator
	default:
		return TierMember
	}
}

// CanModerate reports whether the tier grants delete-any-post rights
// within its forum.
func (t RankTier) CanModerate() bool {
	return t >= TierModerator
}

func (t RankTier) String() string {
	switch t {
	case TierAdmin:
		return "admin"
	case TierModerator:
		return "moderator"
	default:
		return "member"
	}
}
