package domain

// FormInput is the raw state of the input form. Numeric fields hold the text
// exactly as typed; conversion happens in the calculator.
type FormInput struct {
	Name         string
	Base         string
	Sales        string
	Percent      string
	Tier         Tier
	BonusEnabled bool
	Threshold    string
	Bonus        string
}

// InputRecord holds the numeric values of one calculation request.
// Threshold and Bonus are only meaningful when BonusEnabled is set.
type InputRecord struct {
	Name         string
	Base         float64
	Sales        float64
	Percent      float64
	Tier         Tier
	BonusEnabled bool
	Threshold    float64
	Bonus        float64
}

// ResultRecord is the pay derived from an InputRecord.
// Total always equals Base + Commission + AppliedBonus.
type ResultRecord struct {
	Name         string
	Tier         Tier
	Base         float64
	Sales        float64
	Percent      float64
	Commission   float64
	AppliedBonus float64
	Total        float64
}

// Computation is the last computed result of a session: either empty or
// holding a ResultRecord.
type Computation struct {
	result   ResultRecord
	computed bool
}

// Computed wraps r as a present computation.
func Computed(r ResultRecord) Computation {
	return Computation{result: r, computed: true}
}

// Result returns the held record and whether one is present.
func (c Computation) Result() (ResultRecord, bool) {
	return c.result, c.computed
}

// Empty reports whether no result is held.
func (c Computation) Empty() bool {
	return !c.computed
}
