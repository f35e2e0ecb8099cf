package entity

// ProfileMonthlyVolume is the merchant profile field the tier is derived from.
const ProfileMonthlyVolume = "monthly_volume"

// VolumeBracket is a merchant's self-declared monthly processing volume.
type VolumeBracket string

const (
	VolumeUnder10K  VolumeBracket = "lt_10k"
	Volume10KTo100K VolumeBracket = "10k_100k"
	Volume100KTo1M  VolumeBracket = "100k_1m"
	VolumeOver1M    VolumeBracket = "gt_1m"
)

// Tier is a derived merchant classification. It is never stored.
type Tier struct {
	Name       string
	Allocation int64
}

var tiersByBracket = map[VolumeBracket]Tier{
	VolumeUnder10K:  {Name: "starter", Allocation: 500},
	Volume10KTo100K: {Name: "growth", Allocation: 1500},
	Volume100KTo1M:  {Name: "scale", Allocation: 5000},
	VolumeOver1M:    {Name: "enterprise", Allocation: 15000},
}

// TierForBracket maps a volume bracket to its tier.
func TierForBracket(bracket VolumeBracket) (Tier, bool) {
	tier, ok := tiersByBracket[bracket]

	return tier, ok
}
