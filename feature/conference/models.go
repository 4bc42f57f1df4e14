package conference

import "time"

// Column limits of the conference tables.
const (
	MaxTitleLength    = 200
	MaxLocationLength = 128
)

// Status is the lifecycle state of a conference.
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusFinalized Status = "FINALIZED"
)

// Conference is one audit run of a target location.
type Conference struct {
	ID             string     `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Title          string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	TargetLocation string     `gorm:"column:target_location;type:varchar(128);not null;index" json:"targetLocation"`
	Description    *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatorID      uint       `gorm:"column:creator_id;not null;index" json:"creatorId"`
	Status         Status     `gorm:"column:status;type:varchar(16);not null" json:"status"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"createdAt"`
	FinalizedAt    *time.Time `gorm:"column:finalized_at" json:"finalizedAt,omitempty"`

	Participations []Participation `gorm:"foreignKey:ConferenceID;constraint:OnDelete:CASCADE" json:"-"`
	Items          []Item          `gorm:"foreignKey:ConferenceID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name.
func (Conference) TableName() string {
	return "conferences"
}

// IsFinalized reports whether the conference is closed.
func (c Conference) IsFinalized() bool {
	return c.Status == StatusFinalized
}

// Participation links a non-owner user to a conference.
type Participation struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;uniqueIndex:idx_participation_user_conference,priority:1" json:"userId"`
	ConferenceID string    `gorm:"column:conference_id;type:varchar(36);not null;uniqueIndex:idx_participation_user_conference,priority:2;index" json:"conferenceId"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the table name.
func (Participation) TableName() string {
	return "participations"
}

// Item is one verification event. Items are never updated or deleted.
type Item struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ConferenceID    string    `gorm:"column:conference_id;type:varchar(36);not null;uniqueIndex:idx_item_conference_code_user,priority:1" json:"conferenceId"`
	Code            string    `gorm:"column:code;type:varchar(64);not null;uniqueIndex:idx_item_conference_code_user,priority:2" json:"code"`
	UserID          uint      `gorm:"column:user_id;not null;uniqueIndex:idx_item_conference_code_user,priority:3" json:"userId"`
	ScannedLocation string    `gorm:"column:scanned_location;type:varchar(128);not null" json:"scannedLocation"`
	Belongs         bool      `gorm:"column:belongs;not null" json:"belongs"`
	ActualLocation  *string   `gorm:"column:actual_location;type:varchar(128)" json:"actualLocation,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "conference_items"
}

// Models lists the tables owned by this package, in migration order.
func Models() []any {
	return []any{&Conference{}, &Participation{}, &Item{}}
}
