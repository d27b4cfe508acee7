package models

// Mood is the categorical mood label recorded on a health log.
type Mood string

const (
	MoodStressed Mood = "stressed"
	MoodSad      Mood = "sad"
	MoodNeutral  Mood = "neutral"
	MoodHappy    Mood = "happy"
	MoodExcited  Mood = "excited"
)

// moodOrdinals maps each recognized mood to its position on the ordinal
// scale used for correlation math. The ordering is part of the observable
// contract: stressed is the lowest mood, excited the highest.
var moodOrdinals = map[Mood]int{
	MoodStressed: 0,
	MoodSad:      1,
	MoodNeutral:  2,
	MoodHappy:    3,
	MoodExcited:  4,
}

// Ordinal returns the mood's position on the ordinal scale and whether
// the mood is one of the five recognized values. Unrecognized moods are
// not an error; callers silently drop those samples.
func (m Mood) Ordinal() (int, bool) {
	ord, ok := moodOrdinals[m]
	return ord, ok
}

// Valid reports whether the mood is one of the recognized values.
func (m Mood) Valid() bool {
	_, ok := moodOrdinals[m]
	return ok
}
