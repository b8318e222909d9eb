package models

import (
	"time"
)

// CaptionRecord représente une caption générée, journal en append-only
// @Description Caption générée par le provider pour un canal donné
type CaptionRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Topic     string    `json:"topic" gorm:"not null"`
	Tone      string    `json:"tone" gorm:"not null"`
	Channel   string    `json:"channel" gorm:"not null"`
	Caption   string    `json:"caption" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CaptionRecord) TableName() string {
	return "caption_records"
}

// GenerateRequest modèle pour une demande de génération de caption
// @Description Paramètres de génération d'une caption
type GenerateRequest struct {
	Topic   string `json:"topic" binding:"required" example:"sustainable fashion"`
	Tone    string `json:"tone" binding:"required" example:"playful"`
	Channel string `json:"channel" binding:"required" example:"instagram"`
}
