package analyze

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"adeyosola/bank-wrapped/internal/models"
)

func TestDeterminePersonalityFoodie(t *testing.T) {
	transactions := []models.Transaction{
		debitTx(t, "2024-09-01 13:00", 8000, models.CategoryFood),
		debitTx(t, "2024-09-02 13:00", 7000, models.CategoryFood),
		debitTx(t, "2024-09-03 13:00", 5000, models.CategoryOther),
	}
	breakdown := AnalyzeCategories(transactions).Breakdown

	result := DeterminePersonality(transactions, breakdown,
		decimal.Zero, decimal.NewFromInt(20000), 0)

	assert.Equal(t, models.ArchetypeFoodie, result.Archetype)
	assert.NotEmpty(t, result.Traits)
	assert.NotEmpty(t, result.Description)
	assert.NotEmpty(t, result.Emoji)
}

func TestDeterminePersonalityNightOwl(t *testing.T) {
	transactions := []models.Transaction{
		debitTx(t, "2024-09-01 23:30", 2000, models.CategoryOther),
		debitTx(t, "2024-09-02 02:00", 2000, models.CategoryOther),
		debitTx(t, "2024-09-03 23:00", 2000, models.CategoryOther),
		debitTx(t, "2024-09-04 13:00", 2000, models.CategoryOther),
	}
	breakdown := AnalyzeCategories(transactions).Breakdown

	result := DeterminePersonality(transactions, breakdown,
		decimal.Zero, decimal.NewFromInt(8000), 0)

	assert.Equal(t, models.ArchetypeNightOwl, result.Archetype)
}

func TestDeterminePersonalitySaver(t *testing.T) {
	transactions := []models.Transaction{
		debitTx(t, "2024-09-02 13:00", 10000, models.CategoryOther),
		creditTx(t, "2024-09-05 10:00", 100000),
	}
	breakdown := AnalyzeCategories(transactions).Breakdown

	result := DeterminePersonality(transactions, breakdown,
		decimal.NewFromInt(100000), decimal.NewFromInt(10000), 0)

	assert.Equal(t, models.ArchetypeSaver, result.Archetype)
}

func TestDeterminePersonalitySocialButterfly(t *testing.T) {
	transactions := make([]models.Transaction, 0, 35)
	for i := 0; i < 35; i++ {
		tx := transferTx(t, "2024-09-02 13:00", 1000, fmt.Sprintf("Friend %d", i))
		transactions = append(transactions, tx)
	}
	breakdown := AnalyzeCategories(transactions).Breakdown

	result := DeterminePersonality(transactions, breakdown,
		decimal.Zero, decimal.NewFromInt(35000), 35)

	assert.Equal(t, models.ArchetypeSocialButterfly, result.Archetype)
}

func TestDeterminePersonalityBigSpender(t *testing.T) {
	transactions := []models.Transaction{
		debitTx(t, "2024-09-02 13:00", 80000, models.CategoryShopping),
		debitTx(t, "2024-09-03 13:00", 60000, models.CategoryOther),
	}
	breakdown := AnalyzeCategories(transactions).Breakdown

	result := DeterminePersonality(transactions, breakdown,
		decimal.Zero, decimal.NewFromInt(140000), 0)

	assert.Equal(t, models.ArchetypeBigSpender, result.Archetype)
}

func TestDeterminePersonalitySteadyEddie(t *testing.T) {
	// Identical spend every day for a week: coefficient of variation 0.
	transactions := make([]models.Transaction, 0, 7)
	for day := 1; day <= 7; day++ {
		date := fmt.Sprintf("2024-09-0%d 13:00", day)
		transactions = append(transactions, debitTx(t, date, 5000, models.CategoryOther))
	}
	breakdown := AnalyzeCategories(transactions).Breakdown

	result := DeterminePersonality(transactions, breakdown,
		decimal.Zero, decimal.NewFromInt(35000), 0)

	assert.Equal(t, models.ArchetypeSteadyEddie, result.Archetype)
}

func TestDeterminePersonalityNoTransactions(t *testing.T) {
	result := DeterminePersonality(nil, nil, decimal.Zero, decimal.Zero, 0)

	// All scores zero: the first archetype in declaration order wins.
	assert.Equal(t, models.ArchetypeFoodie, result.Archetype)
}

func TestTieredScore(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{30, 4},
		{25, 2}, // thresholds are exclusive
		{20, 2},
		{10, 1},
		{8, 0},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tieredScore(tt.value, 25, 15, 8), "value %v", tt.value)
	}
}
