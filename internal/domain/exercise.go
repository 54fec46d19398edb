package domain

// Muscle group names used by the catalog and the weekly split.
const (
	MuscleChest     = "chest"
	MuscleBack      = "back"
	MuscleLegs      = "legs"
	MuscleShoulders = "shoulders"
	MuscleArms      = "arms"
	MuscleCore      = "core"
	MuscleCardio    = "cardio"
)

// Exercise is an immutable catalog entry loaded once from reference data.
type Exercise struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	MuscleGroup    string     `json:"muscle_group"`
	Equipment      []string   `json:"equipment"`
	Difficulty     Experience `json:"difficulty"`
	Instructions   string     `json:"instructions"`
	VideoURL       string     `json:"video_url,omitempty"`
	GifURL         string     `json:"gif_url,omitempty"`
	CaloriesPerSet int        `json:"calories_per_set,omitempty"`
	Alternatives   []string   `json:"alternatives,omitempty"`
}

// Gym describes a location and the equipment available there.
type Gym struct {
	GymID     string   `json:"gym_id"`
	Name      string   `json:"name"`
	Equipment []string `json:"equipment"`
}

// Supplement is a catalog entry recommended per fitness goal.
type Supplement struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RecommendedFor []Goal   `json:"recommended_for"`
	Timing         string   `json:"timing,omitempty"`
	Benefits       []string `json:"benefits,omitempty"`
}
