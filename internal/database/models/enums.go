package models

// SubscriptionTier governs numeric ceilings such as players per team and teams per coach.
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

// MaxPlayers returns the per-team player ceiling for the tier, 0 meaning unlimited.
func (t SubscriptionTier) MaxPlayers() int {
	if t == TierPro {
		return 0
	}
	return 20
}

// MaxTeams returns the per-coach team ceiling for the tier, 0 meaning unlimited.
func (t SubscriptionTier) MaxTeams() int {
	if t == TierPro {
		return 0
	}
	return 2
}

// PlayerStatus represents the lifecycle state of a player
type PlayerStatus string

const (
	PlayerStatusActive    PlayerStatus = "active"
	PlayerStatusInjured   PlayerStatus = "injured"
	PlayerStatusSuspended PlayerStatus = "suspended"
	PlayerStatusArchived  PlayerStatus = "archived"
)

// TrainingType represents the category of a training session
type TrainingType string

const (
	TrainingTypeRegular   TrainingType = "regular"
	TrainingTypeMatchPrep TrainingType = "match_prep"
	TrainingTypeRecovery  TrainingType = "recovery"
	TrainingTypeTactical  TrainingType = "tactical"
	TrainingTypeTechnical TrainingType = "technical"
	TrainingTypePhysical  TrainingType = "physical"
)

// TrainingStatus represents the state of a training session
type TrainingStatus string

const (
	TrainingStatusScheduled TrainingStatus = "scheduled"
	TrainingStatusCancelled TrainingStatus = "cancelled"
	TrainingStatusCompleted TrainingStatus = "completed"
)

// AttendanceStatus represents a player's attendance state for a training.
// There is no transition graph: coaches correct mistakes freely, so any
// state is reachable from any other.
type AttendanceStatus string

const (
	AttendancePresent        AttendanceStatus = "present"
	AttendanceAbsent         AttendanceStatus = "absent"
	AttendanceLate           AttendanceStatus = "late"
	AttendanceInjured        AttendanceStatus = "injured"
	AttendanceEarlyDeparture AttendanceStatus = "early_departure"
)

// AbsenceReason enumerates why a player missed a training
type AbsenceReason string

const (
	AbsenceIllness      AbsenceReason = "illness"
	AbsenceStudy        AbsenceReason = "study"
	AbsenceFamily       AbsenceReason = "family"
	AbsenceInjury       AbsenceReason = "injury"
	AbsenceVacation     AbsenceReason = "vacation"
	AbsenceDisciplinary AbsenceReason = "disciplinary"
	AbsenceOther        AbsenceReason = "other"
)

// CheckInMethod records how an attendance status was captured
type CheckInMethod string

const (
	CheckInManual CheckInMethod = "manual"
	CheckInQR     CheckInMethod = "qr"
	CheckInSelf   CheckInMethod = "self"
)

// BulkAction enumerates the operations applicable to a set of players in one request
type BulkAction string

const (
	BulkActionArchive        BulkAction = "archive"
	BulkActionActivate       BulkAction = "activate"
	BulkActionSoftDelete     BulkAction = "soft_delete"
	BulkActionAssignCategory BulkAction = "assign_category"
	BulkActionUpdateStatus   BulkAction = "update_status"
)
