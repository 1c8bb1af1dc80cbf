package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"kora-backend/internal/config"
	"kora-backend/internal/database"
	"kora-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CoachData struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Tier      string `yaml:"tier"`
}

type TeamData struct {
	Name       string `yaml:"name"`
	CoachEmail string `yaml:"coach_email"`
	Sport      string `yaml:"sport"`
	Season     string `yaml:"season,omitempty"`
	HomeColor  string `yaml:"home_color,omitempty"`
	AwayColor  string `yaml:"away_color,omitempty"`
}

type PlayerData struct {
	TeamName     string `yaml:"team_name"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	BirthDate    string `yaml:"birth_date"`
	JerseyNumber int    `yaml:"jersey_number"`
	Position     string `yaml:"position,omitempty"`
	Email        string `yaml:"email,omitempty"`
	Phone        string `yaml:"phone,omitempty"`
	GuardianName string `yaml:"guardian_name,omitempty"`
	MedicalNote  string `yaml:"medical_note,omitempty"`
}

type TrainingData struct {
	TeamName        string   `yaml:"team_name"`
	DaysFromNow     int      `yaml:"days_from_now"`
	StartTime       string   `yaml:"start_time"` // "18:30"
	DurationMinutes int      `yaml:"duration_minutes,omitempty"`
	Type            string   `yaml:"type,omitempty"`
	Location        string   `yaml:"location,omitempty"`
	FocusAreas      []string `yaml:"focus_areas,omitempty"`
	Notes           string   `yaml:"notes,omitempty"`
}

// File structures
type CoachesFile struct {
	Coaches []CoachData `yaml:"coaches"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type TrainingsFile struct {
	Trainings []TrainingData `yaml:"trainings"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	coaches, err := loadCoaches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load coaches: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	players, err := loadPlayers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	trainings, err := loadTrainings(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load trainings: %w", err)
	}

	// Create coaches first
	coachMap := make(map[string]*models.Coach)
	coachCreated := 0
	for _, coachData := range coaches {
		coach, created, err := createCoach(db, coachData)
		if err != nil {
			return fmt.Errorf("failed to create coach %s: %w", coachData.Email, err)
		}
		coachMap[coachData.Email] = coach
		if created {
			coachCreated++
		}
	}
	log.Printf("📋 Coaches: %d created, %d total", coachCreated, len(coaches))

	// Create teams
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, coachMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create players
	playerCreated := 0
	for _, playerData := range players {
		_, created, err := createPlayer(db, playerData, teamMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create player %s %s: %v", playerData.FirstName, playerData.LastName, err)
			continue // Continue with other players
		}
		if created {
			playerCreated++
		}
	}
	log.Printf("📋 Players: %d created, %d total", playerCreated, len(players))

	// Create trainings
	trainingCreated := 0
	for _, trainingData := range trainings {
		_, created, err := createTraining(db, trainingData, teamMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create training for %s: %v", trainingData.TeamName, err)
			continue // Continue with other trainings
		}
		if created {
			trainingCreated++
		}
	}
	log.Printf("📋 Trainings: %d created, %d total", trainingCreated, len(trainings))

	return nil
}

func loadCoaches(dataDir string) ([]CoachData, error) {
	var allCoaches []CoachData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "coaches") {
			var file CoachesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCoaches = append(allCoaches, file.Coaches...)
		}
		return nil
	})

	return allCoaches, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadPlayers(dataDir string) ([]PlayerData, error) {
	var allPlayers []PlayerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "players") {
			var file PlayersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlayers = append(allPlayers, file.Players...)
		}
		return nil
	})

	return allPlayers, err
}

func loadTrainings(dataDir string) ([]TrainingData, error) {
	var allTrainings []TrainingData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "trainings") {
			var file TrainingsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTrainings = append(allTrainings, file.Trainings...)
		}
		return nil
	})

	return allTrainings, err
}

func createCoach(db *gorm.DB, coachData CoachData) (*models.Coach, bool, error) {
	var coach models.Coach
	if err := db.Where("email = ?", strings.ToLower(coachData.Email)).First(&coach).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(coachData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			tier := models.TierFree
			if coachData.Tier != "" {
				tier = models.SubscriptionTier(coachData.Tier)
			}

			coach = models.Coach{
				Email:        strings.ToLower(coachData.Email),
				PasswordHash: string(hash),
				FirstName:    coachData.FirstName,
				LastName:     coachData.LastName,
				Provider:     models.ProviderLocal,
				Tier:         tier,
			}

			if err := db.Create(&coach).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create coach: %w", err)
			}
			return &coach, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query coach: %w", err)
		}
	}

	return &coach, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, coachMap map[string]*models.Coach) (*models.Team, bool, error) {
	coach := coachMap[strings.ToLower(teamData.CoachEmail)]
	if coach == nil {
		return nil, false, fmt.Errorf("coach %s not found for team %s", teamData.CoachEmail, teamData.Name)
	}

	var team models.Team
	if err := db.Where("name = ? AND coach_id = ?", teamData.Name, coach.ID).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				CoachID:   coach.ID,
				Name:      teamData.Name,
				Sport:     teamData.Sport,
				Season:    teamData.Season,
				HomeColor: teamData.HomeColor,
				AwayColor: teamData.AwayColor,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createPlayer(db *gorm.DB, playerData PlayerData, teamMap map[string]*models.Team) (*models.Player, bool, error) {
	team := teamMap[playerData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for player %s %s", playerData.TeamName, playerData.FirstName, playerData.LastName)
	}

	birthDate, err := time.Parse("2006-01-02", playerData.BirthDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid birth_date %q: %w", playerData.BirthDate, err)
	}

	var player models.Player
	query := db.Where("team_id = ? AND jersey_number = ? AND status <> ?", team.ID, playerData.JerseyNumber, models.PlayerStatusArchived)
	if err := query.First(&player).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			player = models.Player{
				TeamID:       team.ID,
				FirstName:    playerData.FirstName,
				LastName:     playerData.LastName,
				BirthDate:    birthDate,
				JerseyNumber: playerData.JerseyNumber,
				Position:     playerData.Position,
				Status:       models.PlayerStatusActive,
				Email:        playerData.Email,
				Phone:        playerData.Phone,
				GuardianName: playerData.GuardianName,
				MedicalNote:  playerData.MedicalNote,
			}

			if err := db.Create(&player).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create player: %w", err)
			}
			return &player, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query player: %w", err)
		}
	}

	return &player, false, nil // created = false (existing)
}

func createTraining(db *gorm.DB, trainingData TrainingData, teamMap map[string]*models.Team) (*models.Training, bool, error) {
	team := teamMap[trainingData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found", trainingData.TeamName)
	}

	startsAt, err := resolveStartsAt(trainingData.DaysFromNow, trainingData.StartTime)
	if err != nil {
		return nil, false, err
	}

	var training models.Training
	if err := db.Where("team_id = ? AND starts_at = ?", team.ID, startsAt).First(&training).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			trainingType := models.TrainingTypeRegular
			if trainingData.Type != "" {
				trainingType = models.TrainingType(trainingData.Type)
			}

			duration := 90
			if trainingData.DurationMinutes > 0 {
				duration = trainingData.DurationMinutes
			}

			var focusJSON json.RawMessage
			if len(trainingData.FocusAreas) > 0 {
				focusJSON, _ = json.Marshal(trainingData.FocusAreas)
			}

			training = models.Training{
				TeamID:          team.ID,
				StartsAt:        startsAt,
				DurationMinutes: duration,
				Type:            trainingType,
				Location:        trainingData.Location,
				FocusAreas:      focusJSON,
				Notes:           trainingData.Notes,
				Status:          models.TrainingStatusScheduled,
				CreatedBy:       team.CoachID,
			}

			if err := db.Create(&training).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create training: %w", err)
			}
			return &training, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query training: %w", err)
		}
	}

	return &training, false, nil // created = false (existing)
}

// resolveStartsAt builds a timestamp N days from today at the given wall-clock time,
// so the demo calendar always has upcoming sessions regardless of when it is loaded.
func resolveStartsAt(daysFromNow int, startTime string) (time.Time, error) {
	clock, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_time %q: %w", startTime, err)
	}

	day := time.Now().UTC().AddDate(0, 0, daysFromNow)
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}
