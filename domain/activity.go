package domain

import "time"

// Priority classifies how urgent an activity is. Priorities are totally
// ordered: alta > media > baja.
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaja  Priority = "baja"
)

// Rank maps a priority to its numeric order (alta=3, media=2, baja=1).
// Unknown values rank below baja.
func (p Priority) Rank() int {
	switch p {
	case PriorityAlta:
		return 3
	case PriorityMedia:
		return 2
	case PriorityBaja:
		return 1
	default:
		return 0
	}
}

// Category labels an activity; categories carry no ordering.
type Category string

const (
	CategoryTrabajo  Category = "trabajo"
	CategoryPersonal Category = "personal"
	CategorySalud    Category = "salud"
	CategoryEstudio  Category = "estudio"
	CategoryHogar    Category = "hogar"
)

// Status is the lifecycle state of an activity. A pending activity whose
// due instant has passed is promoted to vencido; toggling flips between
// completado and pendiente.
type Status string

const (
	StatusPendiente  Status = "pendiente"
	StatusCompletado Status = "completado"
	StatusVencido    Status = "vencido"
)

// Activity is a single schedulable reminder. Date carries the calendar day
// and Time the wall-clock "HH:MM" of the due instant; the two are combined
// by DueAt when overdue state is evaluated.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Priority    Priority  `json:"priority"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Activity) IsCompleted() bool {
	return a != nil && a.Status == StatusCompletado
}

// ActivityFormData is the validated input accepted by the store's create
// operation. Validation (non-empty title, well-formed time) happens at the
// input boundary, not here.
type ActivityFormData struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Priority    Priority  `json:"priority"`
	Category    Category  `json:"category"`
}

// ActivityPatch is a partial update; nil fields are left untouched.
type ActivityPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Time        *string    `json:"time,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Status      *Status    `json:"status,omitempty"`
}

// Merge returns a copy of the activity with the patch applied. ID and
// CreatedAt are never patched.
func (a Activity) Merge(p ActivityPatch) Activity {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	return a
}

// ActivityStats aggregates counts over a collection. Stats are derived and
// never persisted; they are recomputed after every mutation.
type ActivityStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
	TodayCount int `json:"todayCount"`
}
