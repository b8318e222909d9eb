package licenses

import (
	"context"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/atropass/ai-caption-saas/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func licenseRows(mock sqlmock.Sqlmock, email, key string, activeUntil, createdAt time.Time) *sqlmock.Rows {
	return mock.NewRows([]string{"id", "email", "license_key", "active_until", "created_at"}).
		AddRow("123e4567-e89b-12d3-a456-426614174000", email, key, activeUntil, createdAt)
}

func TestValidate_UnknownKey(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("unknown-key", 1).
		WillReturnRows(mock.NewRows([]string{"id"}))

	service := NewService(gormDB)
	lic, err := service.Validate(context.Background(), "unknown-key", time.Now().UTC())

	assert.Nil(t, lic)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidate_ActiveLicense(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activeUntil := now.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("valid-key", 1).
		WillReturnRows(licenseRows(mock, "buyer@example.com", "valid-key", activeUntil, now.Add(-time.Hour)))

	service := NewService(gormDB)
	lic, err := service.Validate(context.Background(), "valid-key", now)

	assert.NoError(t, err)
	assert.NotNil(t, lic)
	assert.Equal(t, "valid-key", lic.LicenseKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidate_ExpiredLicense(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activeUntil := now.Add(-time.Minute)

	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("expired-key", 1).
		WillReturnRows(licenseRows(mock, "buyer@example.com", "expired-key", activeUntil, now.Add(-time.Hour)))

	service := NewService(gormDB)
	lic, err := service.Validate(context.Background(), "expired-key", now)

	assert.Nil(t, lic)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidate_ExpiryBoundaryIsExclusive(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Une licence expirant exactement à now ne donne plus accès.
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("boundary-key", 1).
		WillReturnRows(licenseRows(mock, "buyer@example.com", "boundary-key", now, now.Add(-time.Hour)))

	service := NewService(gormDB)
	lic, err := service.Validate(context.Background(), "boundary-key", now)

	assert.Nil(t, lic)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvent_MissingFields(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	service := NewService(gormDB)
	now := time.Now().UTC()

	cases := []Event{
		{Email: "buyer@example.com", LicenseKey: "key-1"},
		{Name: "sale", LicenseKey: "key-1"},
		{Name: "sale", Email: "buyer@example.com"},
	}

	for _, event := range cases {
		_, err := service.ApplyEvent(context.Background(), event, now)
		assert.ErrorIs(t, err, ErrMalformedEvent)
	}
}

func TestApplyEvent_SaleCreatesLicense(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("new-key", 1).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "licenses" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	service := NewService(gormDB)
	outcome, err := service.ApplyEvent(context.Background(), Event{
		Name:       "sale",
		Email:      "buyer@example.com",
		LicenseKey: "new-key",
	}, now)

	assert.NoError(t, err)
	assert.Equal(t, "ok", outcome.Status)
	assert.NotNil(t, outcome.ActiveUntil)
	// Sans next_charge_date, la vente accorde now + 30 jours.
	assert.Equal(t, now.AddDate(0, 0, 30), *outcome.ActiveUntil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvent_SaleOverwritesActiveUntil(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	previous := now.AddDate(0, 0, 90)
	nextCharge := time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("renewed-key", 1).
		WillReturnRows(licenseRows(mock, "buyer@example.com", "renewed-key", previous, now.Add(-time.Hour)))
	mock.ExpectExec(`UPDATE "licenses" SET "active_until"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := NewService(gormDB)
	outcome, err := service.ApplyEvent(context.Background(), Event{
		Name:           "sale",
		Email:          "buyer@example.com",
		LicenseKey:     "renewed-key",
		NextChargeDate: "2025-06-19T00:00:00Z",
	}, now)

	assert.NoError(t, err)
	assert.Equal(t, "ok", outcome.Status)
	// Le renouvellement remplace l'échéance, même si elle était plus lointaine.
	assert.Equal(t, nextCharge, *outcome.ActiveUntil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvent_SaleIdempotentForIdenticalPayload(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	nextCharge := time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC)
	event := Event{
		Name:           "sale",
		Email:          "buyer@example.com",
		LicenseKey:     "renewed-key",
		NextChargeDate: "2025-06-19T00:00:00Z",
	}

	service := NewService(gormDB)

	var results []time.Time
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
			WithArgs("renewed-key", 1).
			WillReturnRows(licenseRows(mock, "buyer@example.com", "renewed-key", nextCharge, now.Add(-time.Hour)))
		mock.ExpectExec(`UPDATE "licenses" SET "active_until"=\$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		outcome, err := service.ApplyEvent(context.Background(), event, now)
		assert.NoError(t, err)
		results = append(results, *outcome.ActiveUntil)
	}

	assert.Equal(t, results[0], results[1])
	assert.Equal(t, nextCharge, results[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvent_SaleInvalidNextChargeDate(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	service := NewService(gormDB)
	_, err := service.ApplyEvent(context.Background(), Event{
		Name:           "sale",
		Email:          "buyer@example.com",
		LicenseKey:     "key-1",
		NextChargeDate: "19/06/2025",
	}, time.Now().UTC())

	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestApplyEvent_CancellationExpiresLicense(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("cancelled-key", 1).
		WillReturnRows(licenseRows(mock, "buyer@example.com", "cancelled-key", now.AddDate(0, 0, 20), now.Add(-time.Hour)))
	mock.ExpectExec(`UPDATE "licenses" SET "active_until"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := NewService(gormDB)
	outcome, err := service.ApplyEvent(context.Background(), Event{
		Name:       "subscription_cancelled",
		Email:      "buyer@example.com",
		LicenseKey: "cancelled-key",
	}, now)

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", outcome.Status)
	assert.Nil(t, outcome.ActiveUntil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvent_CancellationUnknownKeyIsNoop(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE license_key = \$1 ORDER BY "licenses"\."id" LIMIT \$2`).
		WithArgs("ghost-key", 1).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	service := NewService(gormDB)
	outcome, err := service.ApplyEvent(context.Background(), Event{
		Name:       "subscription_cancelled",
		Email:      "buyer@example.com",
		LicenseKey: "ghost-key",
	}, time.Now().UTC())

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", outcome.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvent_UnrecognizedEventIsIgnored(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	service := NewService(gormDB)
	outcome, err := service.ApplyEvent(context.Background(), Event{
		Name:       "refund",
		Email:      "buyer@example.com",
		LicenseKey: "key-1",
	}, time.Now().UTC())

	assert.NoError(t, err)
	assert.Equal(t, "ignored event refund", outcome.Status)
	// Aucun accès base attendu.
	assert.NoError(t, mock.ExpectationsWereMet())
}
