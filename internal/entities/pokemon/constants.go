package pokemon

// MinID and MaxID bound the catalog: generations I through IV
const (
	MinID = 1
	MaxID = 493
)

// MoveCount is the number of moves every custom pokemon carries
const MoveCount = 4

// Gender identifies a custom pokemon's gender
type Gender string

// Gender values
const (
	GenderMale       Gender = "male"
	GenderFemale     Gender = "female"
	GenderGenderless Gender = "genderless"
)

// Genders lists all valid gender values
func Genders() []string {
	return []string{
		string(GenderMale),
		string(GenderFemale),
		string(GenderGenderless),
	}
}

// MoveKind identifies how a move was picked
type MoveKind string

// MoveKind values. Learned moves are validated against the pokemon's
// learnset; random and custom moves are accepted as submitted.
const (
	MoveKindLearned MoveKind = "learned"
	MoveKindRandom  MoveKind = "random"
	MoveKindCustom  MoveKind = "custom"
)

// MoveKinds lists all valid move kind values
func MoveKinds() []string {
	return []string{
		string(MoveKindLearned),
		string(MoveKindRandom),
		string(MoveKindCustom),
	}
}
