// ABOUTME: The 4-week strength & conditioning program template.
// ABOUTME: Defines training days, exercises with set/rep targets, cardio and mobility work.
package models

// ProgramExercise is one exercise slot on a training day with its
// prescribed sets, reps, and intensity.
type ProgramExercise struct {
	Exercise string `json:"exercise"`
	Target   string `json:"target"`
}

// ProgramWeeks is the length of the program cycle.
const ProgramWeeks = 4

// TrainingDays lists the resistance days in weekly order.
var TrainingDays = []string{"Monday", "Tuesday", "Thursday AM", "Friday"}

// WeeklyResistance maps each training day to its exercise slots.
var WeeklyResistance = map[string][]ProgramExercise{
	"Monday": {
		{Exercise: "Back-squat", Target: "1×4 @88% + 3×6 @78%"},
		{Exercise: "Hip-thrust", Target: "4×8"},
	},
	"Tuesday": {
		{Exercise: "Bench Press", Target: "1×4 @88% + 3×6 @78%"},
		{Exercise: "Overhead Press", Target: "3×6"},
		{Exercise: "Dips", Target: "3×10"},
	},
	"Thursday AM": {
		{Exercise: "Deadlift", Target: "1×3 @90% + 3×6 @80%"},
		{Exercise: "Romanian Deadlift", Target: "3×8"},
	},
	"Friday": {
		{Exercise: "Weighted Pull-up", Target: "3×6–8"},
		{Exercise: "Chest-supported Row", Target: "3×10"},
	},
}

// CardioTypes are the session types offered by the cardio log.
var CardioTypes = []string{"HIIT (4×4)", "10-min HIIT", "Zone-2 Run", "Other"}

// MobilityCircuits names the four circuits of the mobility flow, in order.
var MobilityCircuits = []string{
	"Prep (Box breathing, Cat/Cow, CARs)",
	"Joint Flow (WGS, Down-Dog↔Cobra, Lizard, Pigeon)",
	"Animal Circuit (Beast, Ape, Scorpion, Crab, Side Kick)",
	"Cuff Finisher (Band ER, Prone Y)",
}

// IsTrainingDay reports whether day is part of the resistance template.
func IsTrainingDay(day string) bool {
	_, ok := WeeklyResistance[day]
	return ok
}

// ExercisesForDay returns the exercise names scheduled for a day.
func ExercisesForDay(day string) []string {
	slots := WeeklyResistance[day]
	names := make([]string, 0, len(slots))
	for _, slot := range slots {
		names = append(names, slot.Exercise)
	}
	return names
}

// TargetFor returns the prescribed target for an exercise on a day,
// or "" if the exercise is not scheduled that day.
func TargetFor(day, exercise string) string {
	for _, slot := range WeeklyResistance[day] {
		if slot.Exercise == exercise {
			return slot.Target
		}
	}
	return ""
}

// AllExercises returns every exercise in the template, in day order.
func AllExercises() []string {
	var names []string
	for _, day := range TrainingDays {
		for _, slot := range WeeklyResistance[day] {
			names = append(names, slot.Exercise)
		}
	}
	return names
}
