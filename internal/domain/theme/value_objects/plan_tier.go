package value_objects

import "fmt"

type PlanTier string

const (
	TierFree    PlanTier = "free"
	TierBasic   PlanTier = "basic"
	TierPremium PlanTier = "premium"
)

var tierRanks = map[PlanTier]int{
	TierFree:    0,
	TierBasic:   1,
	TierPremium: 2,
}

func (t PlanTier) String() string {
	return string(t)
}

func (t PlanTier) IsValid() bool {
	_, ok := tierRanks[t]
	return ok
}

// Rank orders tiers for availability checks; higher tiers include lower ones.
func (t PlanTier) Rank() int {
	return tierRanks[t]
}

func (t PlanTier) Includes(other PlanTier) bool {
	return t.Rank() >= other.Rank()
}

func ParsePlanTier(s string) (PlanTier, error) {
	t := PlanTier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid plan tier: %s", s)
	}
	return t, nil
}
