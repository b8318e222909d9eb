package models

import (
	"time"
)

// License représente un droit d'accès vendu via Gumroad
// @Description Licence donnant accès à la génération de captions
type License struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email       string    `json:"email" gorm:"not null"`
	LicenseKey  string    `json:"licenseKey" gorm:"column:license_key;uniqueIndex;not null"`
	ActiveUntil time.Time `json:"activeUntil" gorm:"column:active_until;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (License) TableName() string {
	return "licenses"
}

// IsValidAt indique si la licence donne accès à l'instant donné.
// La borne est stricte: une licence expirant exactement à now est invalide.
func (l *License) IsValidAt(now time.Time) bool {
	return now.Before(l.ActiveUntil)
}
