package models

// Ранги покупателей
const (
	RankSilver   = "SILVER"
	RankGold     = "GOLD"
	RankPlatinum = "PLATINUM"
)

// Пороги накопленных баллов для рангов
const (
	RankGoldThreshold     = 1000
	RankPlatinumThreshold = 5000
)

// CalculateRank - вычисляет ранг покупателя по текущему балансу баллов.
// Чистая функция, вызывается после каждого изменения баланса.
func CalculateRank(points int64) string {
	switch {
	case points >= RankPlatinumThreshold:
		return RankPlatinum
	case points >= RankGoldThreshold:
		return RankGold
	default:
		return RankSilver
	}
}
