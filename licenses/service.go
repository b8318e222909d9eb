package licenses

import (
	"context"
	"errors"
	"time"

	"github.com/atropass/ai-caption-saas/models"
	"github.com/atropass/ai-caption-saas/utils"

	"gorm.io/gorm"
)

// Événements Gumroad reconnus. Tout autre event_name est ignoré sans erreur.
const (
	EventSale                  = "sale"
	EventSubscriptionCancelled = "subscription_cancelled"
)

// DefaultGrantDays est la durée en jours accordée par une vente sans
// next_charge_date.
const DefaultGrantDays = 30

var (
	// ErrAccessDenied couvre aussi bien une clé inconnue qu'une clé expirée:
	// on ne révèle pas si la clé a existé.
	ErrAccessDenied = errors.New("license expired or not found")

	// ErrMalformedEvent signale un payload webhook incomplet ou invalide.
	ErrMalformedEvent = errors.New("missing fields in Gumroad payload")
)

// Event est un événement de cycle de vie décodé par l'ingest webhook.
type Event struct {
	Name       string
	Email      string
	LicenseKey string
	// NextChargeDate optionnelle, ISO-8601 suffixée Z. Vide si absente.
	NextChargeDate string
}

// Outcome décrit le résultat d'un ApplyEvent.
type Outcome struct {
	Status      string
	ActiveUntil *time.Time
}

// Service est l'unique autorité sur la validité des licences et sur
// l'application des événements Gumroad.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Validate vérifie qu'une licence existe pour la clé et couvre l'instant now.
// La comparaison est stricte: une licence dont active_until vaut exactement
// now est expirée.
func (s *Service) Validate(ctx context.Context, licenseKey string, now time.Time) (*models.License, error) {
	var lic models.License
	err := s.db.WithContext(ctx).Where("license_key = ?", licenseKey).First(&lic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	if !lic.IsValidAt(now) {
		return nil, ErrAccessDenied
	}

	return &lic, nil
}

// ApplyEvent applique un événement Gumroad à la licence concernée.
//
// Deux ventes concurrentes pour la même clé se résolvent en last-write-wins:
// les webhooks d'un même abonné arrivent sérialisés en pratique, aucune
// exclusion mutuelle n'est posée au-delà de la transaction par requête.
func (s *Service) ApplyEvent(ctx context.Context, event Event, now time.Time) (Outcome, error) {
	if event.Name == "" || event.Email == "" || event.LicenseKey == "" {
		return Outcome{}, ErrMalformedEvent
	}

	switch event.Name {
	case EventSale:
		return s.applySale(ctx, event, now)
	case EventSubscriptionCancelled:
		return s.applyCancellation(ctx, event, now)
	default:
		utils.LogInfo("Ignoring unhandled Gumroad event: " + event.Name)
		return Outcome{Status: "ignored event " + event.Name}, nil
	}
}

// applySale crée la licence ou remplace son échéance (renouvellement).
// L'échéance calculée écrase la précédente, elle ne la prolonge pas.
func (s *Service) applySale(ctx context.Context, event Event, now time.Time) (Outcome, error) {
	activeUntil := now.AddDate(0, 0, DefaultGrantDays)
	if event.NextChargeDate != "" {
		parsed, err := time.Parse(time.RFC3339, event.NextChargeDate)
		if err != nil {
			return Outcome{}, ErrMalformedEvent
		}
		activeUntil = parsed
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lic models.License
		err := tx.Where("license_key = ?", event.LicenseKey).First(&lic).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			lic = models.License{
				Email:       event.Email,
				LicenseKey:  event.LicenseKey,
				ActiveUntil: activeUntil,
			}
			return tx.Create(&lic).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&lic).Update("active_until", activeUntil).Error
	})
	if err != nil {
		utils.LogError(err, "Error applying sale event")
		return Outcome{}, err
	}

	utils.LogSuccess("License granted until " + activeUntil.Format(time.RFC3339))
	return Outcome{Status: "ok", ActiveUntil: &activeUntil}, nil
}

// applyCancellation expire la licence à l'instant du traitement. Annuler une
// clé inconnue est accepté silencieusement.
func (s *Service) applyCancellation(ctx context.Context, event Event, now time.Time) (Outcome, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lic models.License
		err := tx.Where("license_key = ?", event.LicenseKey).First(&lic).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&lic).Update("active_until", now).Error
	})
	if err != nil {
		utils.LogError(err, "Error applying cancellation event")
		return Outcome{}, err
	}

	return Outcome{Status: "cancelled"}, nil
}
