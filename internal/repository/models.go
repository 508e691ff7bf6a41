package repository

import "time"

type User struct {
	ID             uint       `gorm:"primaryKey"`
	Username       string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string     `gorm:"not null"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
	MidiFiles      []MidiFile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type MidiFile struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"not null;index"`
	Filename         string    `gorm:"not null"`
	OriginalFilename string    `gorm:"not null"`
	MidiData         []byte    `gorm:"type:bytea;not null"`
	Duration         *float64  // never computed, stays NULL
	NoteCount        *int
	CreatedAt        time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// TableName pins the table name so "midi" is not run through the inflector.
func (MidiFile) TableName() string {
	return "midi_files"
}
