package catalogControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopsail/storefront-api/models"
)

func autoDiscount(typ string, amount float64) models.Discount {
	return models.Discount{
		ID:     primitive.NewObjectID(),
		Method: models.DiscountMethodAuto,
		Type:   typ,
		Amount: amount,
		Status: models.StatusActive,
	}
}

func TestBestDiscountPicksLowestPrice(t *testing.T) {
	product := models.Product{ID: primitive.NewObjectID(), Price: 100}

	percent := autoDiscount(models.DiscountTypePercentage, 10) // -> 90
	flat := autoDiscount(models.DiscountTypeFixed, 5)          // -> 95

	price, d := BestDiscount(product, []models.Discount{flat, percent})
	require.NotNil(t, d)
	assert.Equal(t, 90.0, price)
	assert.Equal(t, percent.ID, d.ID)
}

func TestBestDiscountStableTie(t *testing.T) {
	product := models.Product{ID: primitive.NewObjectID(), Price: 100}

	first := autoDiscount(models.DiscountTypeFixed, 10)
	second := autoDiscount(models.DiscountTypePercentage, 10)

	price, d := BestDiscount(product, []models.Discount{first, second})
	require.NotNil(t, d)
	assert.Equal(t, 90.0, price)
	assert.Equal(t, first.ID, d.ID, "equal prices keep the first-seen candidate")
}

func TestBestDiscountProductRestriction(t *testing.T) {
	product := models.Product{ID: primitive.NewObjectID(), Price: 100}
	other := primitive.NewObjectID()

	restricted := autoDiscount(models.DiscountTypePercentage, 50)
	restricted.ProductIDs = []string{other.Hex()}

	matching := autoDiscount(models.DiscountTypeFixed, 5)
	matching.ProductIDs = []string{other.Hex(), product.ID.Hex()}

	price, d := BestDiscount(product, []models.Discount{restricted, matching})
	require.NotNil(t, d)
	assert.Equal(t, 95.0, price)
	assert.Equal(t, matching.ID, d.ID)
}

func TestBestDiscountNoCandidates(t *testing.T) {
	product := models.Product{ID: primitive.NewObjectID(), Price: 100}

	unknown := autoDiscount("bogo", 1)

	_, d := BestDiscount(product, []models.Discount{unknown})
	assert.Nil(t, d)

	_, d = BestDiscount(product, nil)
	assert.Nil(t, d)
}

func TestTrialPriceFlooredAndRounded(t *testing.T) {
	assert.Equal(t, 0.0, trialPrice(10, models.Discount{Type: models.DiscountTypeFixed, Amount: 25}))
	assert.Equal(t, 66.67, trialPrice(100, models.Discount{Type: models.DiscountTypePercentage, Amount: 33.33}))
	assert.Equal(t, 0.01, trialPrice(0.01, models.Discount{Type: models.DiscountTypePercentage, Amount: 0}))
}

func TestDiscountActiveWindow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	d := autoDiscount(models.DiscountTypeFixed, 5)
	d.StartsAt = &past
	d.EndsAt = &future
	assert.True(t, DiscountActive(d, now))

	// Bounds are inclusive: ends_at exactly now is still active
	d.EndsAt = &now
	assert.True(t, DiscountActive(d, now))

	justEnded := now.Add(-time.Microsecond)
	d.EndsAt = &justEnded
	assert.False(t, DiscountActive(d, now))

	d.EndsAt = nil
	d.StartsAt = &future
	assert.False(t, DiscountActive(d, now))

	d.StartsAt = nil
	assert.True(t, DiscountActive(d, now))
}

func TestDiscountActiveFilters(t *testing.T) {
	now := time.Now()

	code := autoDiscount(models.DiscountTypeFixed, 5)
	code.Method = models.DiscountMethodCode
	assert.False(t, DiscountActive(code, now), "code discounts never apply automatically")

	inactive := autoDiscount(models.DiscountTypeFixed, 5)
	inactive.Status = "Draft"
	assert.False(t, DiscountActive(inactive, now))
}

func TestDecorateAddsFieldsOnlyWhenApplicable(t *testing.T) {
	product := models.Product{ID: primitive.NewObjectID(), Price: 100}

	plain := decorate(product, nil)
	assert.Nil(t, plain.DiscountedPrice)
	assert.Nil(t, plain.Discount)

	discounted := decorate(product, []models.Discount{autoDiscount(models.DiscountTypePercentage, 10)})
	require.NotNil(t, discounted.DiscountedPrice)
	assert.Equal(t, 90.0, *discounted.DiscountedPrice)
	require.NotNil(t, discounted.Discount)
}
