package postgres

import (
	"testing"
	"time"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mappers must carry every entity field through the persistence model and
// back unchanged. UpdatedAt (and CreatedAt on redemptions) is owned by the
// database, so the fixtures leave it at its zero value.

func TestUserMapping_RoundTrip(t *testing.T) {
	user := &entity.User{
		ID:            uuid.New(),
		Email:         "ada@example.com",
		Name:          "Ada Participant",
		Role:          entity.RoleUser,
		Points:        240,
		WalletAddress: "0xabc123",
		BankDetails: &entity.BankDetails{
			AccountNumber: "0123456789",
			BankName:      "First Bank",
			AccountName:   "Ada Participant",
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	restored := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user, restored)
}

func TestUserMapping_RoundTrip_NoBankDetails(t *testing.T) {
	user := &entity.User{
		ID:     uuid.New(),
		Email:  "collector@example.com",
		Name:   "Cole Collector",
		Role:   entity.RoleCollector,
		Points: 0,
	}

	restored := toUserDomain(fromUserDomain(user))

	require.NotNil(t, restored)
	// Unset bank details must stay nil, not come back as an empty struct.
	assert.Nil(t, restored.BankDetails)
	assert.Equal(t, user, restored)
}

func TestMaterialTypeMapping_RoundTrip(t *testing.T) {
	material := &entity.MaterialType{
		ID:          uuid.New(),
		Name:        "PET Bottle",
		Description: "Clear plastic bottles",
		PointValue:  10,
		Code:        "QR_PET_BOTTLE_1718000000000",
		CreatedBy:   uuid.New(),
		CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	restored := toMaterialTypeDomain(fromMaterialTypeDomain(material))

	assert.Equal(t, material, restored)
}

func TestRedemptionMapping_RoundTrip(t *testing.T) {
	redemption := &entity.Redemption{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Points:      150,
		Method:      entity.RedemptionMethodBank,
		Destination: "First Bank - 0123456789",
		Amount:      1.5,
		Status:      entity.RedemptionStatusPending,
	}

	restored := toRedemptionDomain(fromRedemptionDomain(redemption))

	assert.Equal(t, redemption, restored)
}

func TestMapping_NilPassThrough(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
	assert.Nil(t, toMaterialTypeDomain(nil))
	assert.Nil(t, fromRedemptionDomain(nil))
}
