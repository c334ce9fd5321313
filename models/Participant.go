package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/twinj/uuid"
	"gorm.io/gorm"
)

// ErrParticipantNotFound is returned when a pick operation references a
// participant record that no longer exists. Callers treat it as fatal.
var ErrParticipantNotFound = errors.New("participant not found")

type Participant struct {
	ID            uint      `gorm:"primary_key;autoIncrement" json:"id"`
	PublicID      string    `gorm:"type:uuid;uniqueIndex;column:public_id" json:"public_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Email         string    `gorm:"size:100;not null;unique" json:"email"`
	Phone         string    `gorm:"size:50;not null" json:"phone"`
	Comments      string    `gorm:"type:text" json:"comments"`
	PaymentMethod string    `gorm:"size:100;not null" json:"payment_method"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (p *Participant) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(p.PublicID) == "" {
		p.PublicID = uuid.NewV4().String()
	}
	return nil
}

func (p *Participant) Prepare() {
	p.Name = html.EscapeString(strings.TrimSpace(p.Name))
	p.Email = html.EscapeString(strings.ToLower(strings.TrimSpace(p.Email)))
	p.Phone = html.EscapeString(strings.TrimSpace(p.Phone))
	p.Comments = html.EscapeString(strings.TrimSpace(p.Comments))
	p.PaymentMethod = html.EscapeString(strings.TrimSpace(p.PaymentMethod))
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
}

// Validate returns field-keyed error messages. Comments is the only
// optional identity field.
func (p *Participant) Validate(action string) map[string]string {
	var errorMessages = make(map[string]string)

	switch strings.ToLower(action) {
	default:
		if p.Name == "" {
			errorMessages["Required_name"] = "Required Name"
		}
		if p.Phone == "" {
			errorMessages["Required_phone"] = "Required Phone"
		}
		if p.PaymentMethod == "" {
			errorMessages["Required_payment_method"] = "Required Payment Method"
		}
		if p.Email == "" {
			errorMessages["Required_email"] = "Required Email"
		}
		if p.Email != "" {
			if err := checkmail.ValidateFormat(p.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	}
	return errorMessages
}

func (p *Participant) SaveParticipant(db *gorm.DB) (*Participant, error) {
	err := db.Create(&p).Error
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Participant) FindParticipantByID(db *gorm.DB, pid uint) (*Participant, error) {
	var participant Participant
	err := db.Where("id = ?", pid).Take(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

func (p *Participant) FindParticipantByEmail(db *gorm.DB, email string) (*Participant, error) {
	var participant Participant
	err := db.Where("lower(email) = ?", strings.ToLower(email)).Take(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}
