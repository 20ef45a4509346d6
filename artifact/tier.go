package artifact

// Tier names a stage of cached derivation.
type Tier string

const (
	TierRaw      Tier = "raw"
	TierCleaned  Tier = "cleaned"
	TierPrepared Tier = "prepared"
)

// suffix is the filename tier marker; the raw tier carries none.
func (t Tier) suffix() string {
	if t == TierRaw {
		return ""
	}
	return "_" + string(t)
}
