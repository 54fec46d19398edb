package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
)

// Catalog holds the immutable exercise, gym and supplement reference data,
// loaded once at startup.
type Catalog struct {
	exercises   []domain.Exercise
	gyms        []domain.Gym
	supplements []domain.Supplement
	byID        map[string]int
}

// New builds a catalog from in-memory reference data.
func New(exercises []domain.Exercise, gyms []domain.Gym, supplements []domain.Supplement) *Catalog {
	c := &Catalog{
		exercises:   exercises,
		gyms:        gyms,
		supplements: supplements,
		byID:        make(map[string]int, len(exercises)),
	}
	for i, ex := range exercises {
		c.byID[ex.ID] = i
	}
	return c
}

// Load reads exercises.json, gyms.json and supplements.json from dataDir.
// A missing supplements file is tolerated; exercises and gyms are required.
func Load(dataDir string) (*Catalog, error) {
	var exFile struct {
		Exercises []domain.Exercise `json:"exercises"`
	}
	if err := readFile(filepath.Join(dataDir, "exercises.json"), &exFile); err != nil {
		return nil, err
	}

	var gymFile struct {
		Gyms []domain.Gym `json:"gyms"`
	}
	if err := readFile(filepath.Join(dataDir, "gyms.json"), &gymFile); err != nil {
		return nil, err
	}

	var suppFile struct {
		Supplements []domain.Supplement `json:"supplements"`
	}
	if err := readFile(filepath.Join(dataDir, "supplements.json"), &suppFile); err != nil {
		if !os.IsNotExist(unwrapPathError(err)) {
			return nil, err
		}
	}

	return New(exFile.Exercises, gymFile.Gyms, suppFile.Supplements), nil
}

func readFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}

// SearchFilter restricts and ranks a catalog search.
type SearchFilter struct {
	Query        string
	Equipment    []string   // available equipment; exercises needing anything else are excluded
	MuscleGroups []string   // optional
	Difficulty   domain.Experience // optional exact match
	Limit        int
}

// Search returns exercises matching the filter, ranked by token overlap
// between the query and the exercise text. Exercises requiring equipment
// outside the filter set are excluded entirely, never just de-prioritized.
func (c *Catalog) Search(f SearchFilter) []domain.Exercise {
	available := toSet(f.Equipment)
	wanted := toSet(f.MuscleGroups)
	tokens := strings.Fields(strings.ToLower(f.Query))

	type scored struct {
		ex    domain.Exercise
		score int
	}

	var matches []scored
	for _, ex := range c.exercises {
		if !equipmentAvailable(ex.Equipment, available) {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[ex.MuscleGroup]; !ok {
				continue
			}
		}
		if f.Difficulty != "" && ex.Difficulty != f.Difficulty {
			continue
		}

		text := strings.ToLower(ex.Name + " " + ex.MuscleGroup + " " + string(ex.Difficulty) + " " + ex.Instructions)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				score++
			}
		}
		matches = append(matches, scored{ex: ex, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	limit := f.Limit
	if limit <= 0 || limit > len(matches) {
		limit = len(matches)
	}
	result := make([]domain.Exercise, 0, limit)
	for _, m := range matches[:limit] {
		result = append(result, m.ex)
	}
	return result
}

// ExerciseByID looks up an exercise. A missing id yields ok=false, not an error.
func (c *Catalog) ExerciseByID(id string) (domain.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Exercise{}, false
	}
	return c.exercises[i], true
}

// GymEquipment returns the equipment set of a gym, or an empty slice for an
// unknown gym id.
func (c *Catalog) GymEquipment(gymID string) []string {
	for _, gym := range c.gyms {
		if gym.GymID == gymID {
			return gym.Equipment
		}
	}
	return nil
}

// Alternatives returns the alternatives of an exercise that can be performed
// with the given gym's equipment.
func (c *Catalog) Alternatives(exerciseID, gymID string) []domain.Exercise {
	ex, ok := c.ExerciseByID(exerciseID)
	if !ok {
		return nil
	}
	available := toSet(c.GymEquipment(gymID))

	var alts []domain.Exercise
	for _, altID := range ex.Alternatives {
		alt, ok := c.ExerciseByID(altID)
		if !ok {
			continue
		}
		if equipmentAvailable(alt.Equipment, available) {
			alts = append(alts, alt)
		}
	}
	return alts
}

// SupplementsForGoal returns supplements recommended for a fitness goal.
func (c *Catalog) SupplementsForGoal(goal domain.Goal) []domain.Supplement {
	var matching []domain.Supplement
	for _, supp := range c.supplements {
		for _, g := range supp.RecommendedFor {
			if g == goal {
				matching = append(matching, supp)
				break
			}
		}
	}
	return matching
}

func equipmentAvailable(required []string, available map[string]struct{}) bool {
	for _, eq := range required {
		if _, ok := available[eq]; !ok {
			return false
		}
	}
	return true
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
