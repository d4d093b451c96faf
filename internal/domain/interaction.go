package domain

// MessageThreshold is the number of qualifying interactions an
// unordered member pair needs before direct messaging unlocks.
const MessageThreshold = 3

// Interaction tracks the running interaction count for an unordered
// member pair (interactions table). The count only ever increases;
// it is relationship state and survives the nightly reset.
type Interaction struct {
	PairKey string `gorm:"column:pair_key;primaryKey" json:"pair_key"`
	Count   int64  `gorm:"column:count" json:"count"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// Pair is the canonical unordered pair of member ids: the
// lexicographically smaller id always comes first, so (A,B) and (B,A)
// map to the same key.
type Pair struct {
	Low  string
	High string
}

// NewPair canonicalizes two member ids into a Pair
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{Low: a, High: b}
}

// Key returns the storage key for the pair
func (p Pair) Key() string {
	return p.Low + ":" + p.High
}

// Self reports whether the pair joins a member with themselves.
// Self-pairs may be recorded but never unlock messaging.
func (p Pair) Self() bool {
	return p.Low == p.High
}
