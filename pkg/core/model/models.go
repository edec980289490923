package model

import (
	"slices"
	"time"
)

type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleVolunteer Role = "volunteer"
)

func (r Role) IsValid() bool {
	return r == RoleOrganizer || r == RoleVolunteer
}

// TimeSlot is a coarse time-of-day bucket used for volunteer availability
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

func (s TimeSlot) IsValid() bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotEvening
}

// TimeSlotOf returns the bucket a timestamp falls into, using its own location.
// Before noon is morning, before 17:00 is afternoon, anything later is evening.
func TimeSlotOf(t time.Time) TimeSlot {
	switch h := t.Hour(); {
	case h < 12:
		return SlotMorning
	case h < 17:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

type EventStatus string

const (
	EventPlanning  EventStatus = "planning"
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
)

func (s EventStatus) IsValid() bool {
	return s == EventPlanning || s == EventActive || s == EventCompleted
}

type ShiftStatus string

const (
	ShiftOpen      ShiftStatus = "open"
	ShiftFull      ShiftStatus = "full"
	ShiftCompleted ShiftStatus = "completed"
)

func (s ShiftStatus) IsValid() bool {
	return s == ShiftOpen || s == ShiftFull || s == ShiftCompleted
}

type TaskStatus string

const (
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	return s == TaskAssigned || s == TaskInProgress || s == TaskCompleted
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type AnnouncementPriority string

const (
	AnnouncementInfo    AnnouncementPriority = "info"
	AnnouncementWarning AnnouncementPriority = "warning"
	AnnouncementUrgent  AnnouncementPriority = "urgent"
)

func (p AnnouncementPriority) IsValid() bool {
	return p == AnnouncementInfo || p == AnnouncementWarning || p == AnnouncementUrgent
}

// Audience controls which roles an announcement is shown to
type Audience string

const (
	AudienceAll        Audience = "all"
	AudienceVolunteers Audience = "volunteers"
	AudienceOrganizers Audience = "organizers"
)

func (a Audience) IsValid() bool {
	return a == AudienceAll || a == AudienceVolunteers || a == AudienceOrganizers
}

// AudienceForRole maps a user role onto the announcement audience it belongs to
func AudienceForRole(r Role) Audience {
	if r == RoleOrganizer {
		return AudienceOrganizers
	}
	return AudienceVolunteers
}

type AttendanceStatus string

const (
	AttendanceScheduled AttendanceStatus = "scheduled"
	AttendanceCheckedIn AttendanceStatus = "checked-in"
	AttendanceCompleted AttendanceStatus = "completed"
	AttendanceNoShow    AttendanceStatus = "no-show"
)

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceScheduled, AttendanceCheckedIn, AttendanceCompleted, AttendanceNoShow:
		return true
	}
	return false
}

// User represents an organizer or a volunteer
type User struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Email        string     `json:"email" yaml:"email"`
	Role         Role       `json:"role" yaml:"role"`
	Phone        string     `json:"phone,omitempty" yaml:"phone,omitempty"`
	Skills       []string   `json:"skills,omitempty" yaml:"skills,omitempty"`
	Availability []TimeSlot `json:"availability,omitempty" yaml:"availability,omitempty"`
}

// HasSkill reports whether the user lists the given skill (exact match)
func (u User) HasSkill(skill string) bool {
	return slices.Contains(u.Skills, skill)
}

// IsAvailable reports whether the user declared availability for the slot
func (u User) IsAvailable(slot TimeSlot) bool {
	return slices.Contains(u.Availability, slot)
}

// Clone returns a copy that shares no slices with u
func (u User) Clone() User {
	u.Skills = slices.Clone(u.Skills)
	u.Availability = slices.Clone(u.Availability)
	return u
}

// Registration carries the data submitted when signing up
type Registration struct {
	Name         string
	Email        string
	Password     string
	Role         Role
	Phone        string
	Skills       []string
	Availability []TimeSlot
}

// Event is an organizer-owned occasion that shifts belong to
type Event struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Date        time.Time   `json:"date" yaml:"date"`
	Location    string      `json:"location" yaml:"location"`
	Description string      `json:"description" yaml:"description"`
	OrganizerID string      `json:"organizerId" yaml:"organizerId"`
	Status      EventStatus `json:"status" yaml:"status"`
}

// Shift is a bounded time window at an event needing a number of volunteers
type Shift struct {
	ID                 string      `json:"id" yaml:"id"`
	EventID            string      `json:"eventId" yaml:"eventId"`
	Title              string      `json:"title" yaml:"title"`
	Description        string      `json:"description" yaml:"description"`
	StartTime          time.Time   `json:"startTime" yaml:"startTime"`
	EndTime            time.Time   `json:"endTime" yaml:"endTime"`
	RequiredVolunteers int         `json:"requiredVolunteers" yaml:"requiredVolunteers"`
	AssignedVolunteers []string    `json:"assignedVolunteers" yaml:"assignedVolunteers"`
	Skills             []string    `json:"skills,omitempty" yaml:"skills,omitempty"`
	Location           string      `json:"location" yaml:"location"`
	Status             ShiftStatus `json:"status" yaml:"status"`
}

// Duration is EndTime minus StartTime; negative for malformed ranges
func (s Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// HasVolunteer reports whether the volunteer is assigned to the shift
func (s Shift) HasVolunteer(volunteerID string) bool {
	return slices.Contains(s.AssignedVolunteers, volunteerID)
}

// Clone returns a copy that shares no slices with s
func (s Shift) Clone() Shift {
	s.AssignedVolunteers = slices.Clone(s.AssignedVolunteers)
	s.Skills = slices.Clone(s.Skills)
	return s
}

// Staffing summarises how many volunteers a shift has against how many it needs
type Staffing struct {
	Assigned     int
	Required     int
	Understaffed bool
}

type Task struct {
	ID          string       `json:"id" yaml:"id"`
	ShiftID     string       `json:"shiftId" yaml:"shiftId"`
	VolunteerID string       `json:"volunteerId" yaml:"volunteerId"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Status      TaskStatus   `json:"status" yaml:"status"`
	Priority    TaskPriority `json:"priority" yaml:"priority"`
	DueTime     *time.Time   `json:"dueTime,omitempty" yaml:"dueTime,omitempty"`
}

type Announcement struct {
	ID             string               `json:"id" yaml:"id"`
	EventID        string               `json:"eventId" yaml:"eventId"`
	Title          string               `json:"title" yaml:"title"`
	Message        string               `json:"message" yaml:"message"`
	Timestamp      time.Time            `json:"timestamp" yaml:"timestamp"`
	Priority       AnnouncementPriority `json:"priority" yaml:"priority"`
	TargetAudience Audience             `json:"targetAudience" yaml:"targetAudience"`
}

// VisibleTo reports whether the announcement targets the audience, directly or via "all"
func (a Announcement) VisibleTo(audience Audience) bool {
	return a.TargetAudience == AudienceAll || a.TargetAudience == audience
}

// AttendanceRecord tracks check-in state for a (volunteer, shift) pair
type AttendanceRecord struct {
	ID           string           `json:"id" yaml:"id"`
	VolunteerID  string           `json:"volunteerId" yaml:"volunteerId"`
	ShiftID      string           `json:"shiftId" yaml:"shiftId"`
	CheckInTime  *time.Time       `json:"checkInTime,omitempty" yaml:"checkInTime,omitempty"`
	CheckOutTime *time.Time       `json:"checkOutTime,omitempty" yaml:"checkOutTime,omitempty"`
	Status       AttendanceStatus `json:"status" yaml:"status"`
}

// Clone returns a copy that shares no pointers with t
func (t Task) Clone() Task {
	t.DueTime = cloneTime(t.DueTime)
	return t
}

// Clone returns a copy that shares no pointers with r
func (r AttendanceRecord) Clone() AttendanceRecord {
	r.CheckInTime = cloneTime(r.CheckInTime)
	r.CheckOutTime = cloneTime(r.CheckOutTime)
	return r
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
